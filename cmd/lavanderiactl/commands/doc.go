// Package commands defines the lavanderiactl operator CLI.
//
// Commands
//
//   - reconcile order <id>   Recompute the payment status of one order
//   - reconcile all          Recompute every order, optionally filtered by --estado
//   - rates show             Print the principal currency and conversion rates
//
// Configuration comes from the same environment variables as the server
// (DATABASE_URI, LOG_LEVEL, APP_MODE, ...).
package commands
