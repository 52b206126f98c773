// Package server is the HTTP face of the service. Every behavior here is
// driven by the immutable configuration snapshot it is constructed with:
// middleware is wired from the feature flags, CORS from the cors namespace,
// throttling from the rate-limit namespace, and static serving from the
// frontend namespace.
package server
