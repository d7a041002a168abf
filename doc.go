// Package deskpilot exposes a remote desktop-control engine: it reads the
// screen via capture and OCR, drives the mouse and keyboard, launches
// applications, and interprets short free-text task strings ("click at 500,
// 300", "type Hello, world!", "press ctrl+c", "open chrome", "read screen")
// into typed actions.
//
// Actions run against one of two backends selected once at startup: a real
// backend driving the OS through robotgo and Tesseract, or a simulated
// backend that echoes what would have happened. Simulation is chosen
// automatically in headless environments and can be forced by configuration;
// both backends validate input identically and return the same result
// envelope.
//
// The engine is consumed through the HTTP adapter (pkg/adapters/http), the
// MCP adapter (pkg/adapters/mcp) or directly via Engine.Dispatch.
package deskpilot
