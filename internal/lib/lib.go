// Package lib groups modules that do not fit strictly into the
// handler/service/repository layers: background jobs (asynq) and the
// transactional email client (Resend).
package lib
