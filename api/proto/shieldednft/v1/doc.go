// Package registrypb holds the protobuf messages and gRPC bindings of the
// shielded NFT registry service.
package registrypb

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative shieldednft/v1/registry.proto
