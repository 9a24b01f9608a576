// Package mcpserver exposes the image provider as Model Context
// Protocol tools over stdio.
//
// Three tools are registered: generate_image, edit_image, and
// describe_image. Each handler coerces the host's arguments into a
// typed request, calls the provider, and maps the outcome into the
// host's content-block format. Failures become labeled error results;
// the host never sees an unhandled fault from a single tool call.
//
// The server writes logs to stderr only. Stdout carries the protocol
// and must stay clean.
package mcpserver
