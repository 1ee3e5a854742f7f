// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run pipeline (load graph, resolve
// strategies, generate or reuse seed plans, compete, report), decoupled from
// any specific entrypoint like a CLI or server.
package app
