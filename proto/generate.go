// Package proto holds the service definitions; generated code lands under
// gen/proto.
package proto

//go:generate protoc --go_out=.. --go_opt=module=github.com/tobi-adeyemi/extractflow --go-grpc_out=.. --go-grpc_opt=module=github.com/tobi-adeyemi/extractflow extractflow/v1/extractflow.proto
