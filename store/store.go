package store

// Package store provides table service implementations for the resetter.
// The TableService and TableHandle interfaces are defined in the parent
// statusreset package (../store_interface.go) to avoid import cycles.
//
// This package contains concrete implementations:
//   - DynamoDBService: AWS DynamoDB backend
//   - MemoryService: In-memory backend for testing
