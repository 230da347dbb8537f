// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the exporter can publish the rendered figure to
// AWS S3 or a self-hosted MinIO instance. The Client interface keeps the surface
// small enough to mock (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	info, err := storage.PutJSON(ctx, client, cfg.Storage.Bucket, cfg.Storage.ObjectKey, data)
package storage
