// Package server runs the application's transport.
//
// In "http" mode it serves the router on a long-lived listener and shuts down
// gracefully on SIGTERM, SIGINT or SIGQUIT. In "lambda" mode it translates
// API Gateway proxy events into requests for the same router.
package server
