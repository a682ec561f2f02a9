// Package blobstore implements the remote fetch and summarize job against
// an S3-compatible blob endpoint (a local emulator in development).
//
// Client handles the store operations: bucket creation treating
// already-exists as success, full-object download, and upload for seeding.
// Job runs the straight-line batch flow: download the dataset blob, compute
// per-diet macro means, and persist the summary as a JSON file.
package blobstore
