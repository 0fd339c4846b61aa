package client

// Package client implements the HTTP collaborators for the two remote
// services: screenplay generation and emotion analysis. Each call issues
// exactly one request with no retries; timeouts are left to the transport.
