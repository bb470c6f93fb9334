// Package services implements the driving port interfaces.
// Services contain the core business logic: corpus merging, prompt
// assembly, model routing, and conversation bookkeeping. They call out
// to driven ports (adapters) for all network work.
package services
