// Package minio provides a docstore.Store implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library for optimal compatibility with MinIO
// and other S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := miniostore.NewStore(client, "my-bucket", "tables/")
//	err = docstore.SaveTable(ctx, store, "gut.biom.zst", table, "my-pipeline 1.0")
//
// # Features
//
//   - Native MinIO client with optimal performance
//   - Works with any S3-compatible storage (Ceph, Garage, SeaweedFS)
//   - Air-gap friendly (no AWS dependencies required)
package minio
