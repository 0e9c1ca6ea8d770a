// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        v3.5.1-go
// source: extractflow/v1/extractflow.proto

package extractflowv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FileUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileUpload) Reset() {
	*x = FileUpload{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileUpload) ProtoMessage() {}

func (x *FileUpload) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileUpload.ProtoReflect.Descriptor instead.
func (*FileUpload) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{0}
}

func (x *FileUpload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FileUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type CreateSessionRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Files  []*FileUpload          `protobuf:"bytes,2,rep,name=files,proto3" json:"files,omitempty"`
	// JSON-encoded naming template and export column config.
	NamingTemplate []byte `protobuf:"bytes,3,opt,name=naming_template,json=namingTemplate,proto3" json:"naming_template,omitempty"`
	ExportColumns  []byte `protobuf:"bytes,4,opt,name=export_columns,json=exportColumns,proto3" json:"export_columns,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateSessionRequest) Reset() {
	*x = CreateSessionRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionRequest) ProtoMessage() {}

func (x *CreateSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionRequest.ProtoReflect.Descriptor instead.
func (*CreateSessionRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{1}
}

func (x *CreateSessionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateSessionRequest) GetFiles() []*FileUpload {
	if x != nil {
		return x.Files
	}
	return nil
}

func (x *CreateSessionRequest) GetNamingTemplate() []byte {
	if x != nil {
		return x.NamingTemplate
	}
	return nil
}

func (x *CreateSessionRequest) GetExportColumns() []byte {
	if x != nil {
		return x.ExportColumns
	}
	return nil
}

type CreateSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	TotalUnits    int32                  `protobuf:"varint,2,opt,name=total_units,json=totalUnits,proto3" json:"total_units,omitempty"`
	ExpiresAt     string                 `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionResponse) Reset() {
	*x = CreateSessionResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionResponse) ProtoMessage() {}

func (x *CreateSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionResponse.ProtoReflect.Descriptor instead.
func (*CreateSessionResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{2}
}

func (x *CreateSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CreateSessionResponse) GetTotalUnits() int32 {
	if x != nil {
		return x.TotalUnits
	}
	return 0
}

func (x *CreateSessionResponse) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type GetSessionStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionStatusRequest) Reset() {
	*x = GetSessionStatusRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionStatusRequest) ProtoMessage() {}

func (x *GetSessionStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionStatusRequest.ProtoReflect.Descriptor instead.
func (*GetSessionStatusRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{3}
}

func (x *GetSessionStatusRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetSessionStatusRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetSessionStatusResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Status         string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	ProcessedUnits int32                  `protobuf:"varint,2,opt,name=processed_units,json=processedUnits,proto3" json:"processed_units,omitempty"`
	TotalUnits     int32                  `protobuf:"varint,3,opt,name=total_units,json=totalUnits,proto3" json:"total_units,omitempty"`
	Error          string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetSessionStatusResponse) Reset() {
	*x = GetSessionStatusResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionStatusResponse) ProtoMessage() {}

func (x *GetSessionStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionStatusResponse.ProtoReflect.Descriptor instead.
func (*GetSessionStatusResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{4}
}

func (x *GetSessionStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetSessionStatusResponse) GetProcessedUnits() int32 {
	if x != nil {
		return x.ProcessedUnits
	}
	return 0
}

func (x *GetSessionStatusResponse) GetTotalUnits() int32 {
	if x != nil {
		return x.TotalUnits
	}
	return 0
}

func (x *GetSessionStatusResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListSessionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsRequest) Reset() {
	*x = ListSessionsRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsRequest) ProtoMessage() {}

func (x *ListSessionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsRequest.ProtoReflect.Descriptor instead.
func (*ListSessionsRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{5}
}

func (x *ListSessionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type Session struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status         string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	TotalUnits     int32                  `protobuf:"varint,3,opt,name=total_units,json=totalUnits,proto3" json:"total_units,omitempty"`
	CompletedUnits int32                  `protobuf:"varint,4,opt,name=completed_units,json=completedUnits,proto3" json:"completed_units,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt      string                 `protobuf:"bytes,6,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Session) Reset() {
	*x = Session{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Session) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Session) ProtoMessage() {}

func (x *Session) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Session.ProtoReflect.Descriptor instead.
func (*Session) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{6}
}

func (x *Session) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Session) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Session) GetTotalUnits() int32 {
	if x != nil {
		return x.TotalUnits
	}
	return 0
}

func (x *Session) GetCompletedUnits() int32 {
	if x != nil {
		return x.CompletedUnits
	}
	return 0
}

func (x *Session) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Session) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type ListSessionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sessions      []*Session             `protobuf:"bytes,1,rep,name=sessions,proto3" json:"sessions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsResponse) Reset() {
	*x = ListSessionsResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsResponse) ProtoMessage() {}

func (x *ListSessionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsResponse.ProtoReflect.Descriptor instead.
func (*ListSessionsResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{7}
}

func (x *ListSessionsResponse) GetSessions() []*Session {
	if x != nil {
		return x.Sessions
	}
	return nil
}

type CancelSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelSessionRequest) Reset() {
	*x = CancelSessionRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelSessionRequest) ProtoMessage() {}

func (x *CancelSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelSessionRequest.ProtoReflect.Descriptor instead.
func (*CancelSessionRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{8}
}

func (x *CancelSessionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CancelSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type CancelSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelSessionResponse) Reset() {
	*x = CancelSessionResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelSessionResponse) ProtoMessage() {}

func (x *CancelSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelSessionResponse.ProtoReflect.Descriptor instead.
func (*CancelSessionResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{9}
}

type DownloadBundleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadBundleRequest) Reset() {
	*x = DownloadBundleRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadBundleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadBundleRequest) ProtoMessage() {}

func (x *DownloadBundleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadBundleRequest.ProtoReflect.Descriptor instead.
func (*DownloadBundleRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{10}
}

func (x *DownloadBundleRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *DownloadBundleRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type DownloadBundleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bundle        []byte                 `protobuf:"bytes,1,opt,name=bundle,proto3" json:"bundle,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadBundleResponse) Reset() {
	*x = DownloadBundleResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadBundleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadBundleResponse) ProtoMessage() {}

func (x *DownloadBundleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadBundleResponse.ProtoReflect.Descriptor instead.
func (*DownloadBundleResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{11}
}

func (x *DownloadBundleResponse) GetBundle() []byte {
	if x != nil {
		return x.Bundle
	}
	return nil
}

type GetBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{12}
}

func (x *GetBalanceRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetBalanceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       int32                  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{13}
}

func (x *GetBalanceResponse) GetBalance() int32 {
	if x != nil {
		return x.Balance
	}
	return 0
}

type ListTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{14}
}

func (x *ListTransactionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListTransactionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	CreditsDelta  int32                  `protobuf:"varint,3,opt,name=credits_delta,json=creditsDelta,proto3" json:"credits_delta,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{15}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Transaction) GetCreditsDelta() int32 {
	if x != nil {
		return x.CreditsDelta
	}
	return 0
}

func (x *Transaction) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Transaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Transaction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{16}
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

type AccelerateExpiryRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	SessionId string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	// RFC 3339; must be earlier than the current expiry.
	ExpiresAt     string `protobuf:"bytes,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AccelerateExpiryRequest) Reset() {
	*x = AccelerateExpiryRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccelerateExpiryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccelerateExpiryRequest) ProtoMessage() {}

func (x *AccelerateExpiryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccelerateExpiryRequest.ProtoReflect.Descriptor instead.
func (*AccelerateExpiryRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{17}
}

func (x *AccelerateExpiryRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *AccelerateExpiryRequest) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type AccelerateExpiryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AccelerateExpiryResponse) Reset() {
	*x = AccelerateExpiryResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccelerateExpiryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccelerateExpiryResponse) ProtoMessage() {}

func (x *AccelerateExpiryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccelerateExpiryResponse.ProtoReflect.Descriptor instead.
func (*AccelerateExpiryResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{18}
}

type ReprocessSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessSessionRequest) Reset() {
	*x = ReprocessSessionRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessSessionRequest) ProtoMessage() {}

func (x *ReprocessSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessSessionRequest.ProtoReflect.Descriptor instead.
func (*ReprocessSessionRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{19}
}

func (x *ReprocessSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ReprocessSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessSessionResponse) Reset() {
	*x = ReprocessSessionResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessSessionResponse) ProtoMessage() {}

func (x *ReprocessSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessSessionResponse.ProtoReflect.Descriptor instead.
func (*ReprocessSessionResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{20}
}

type RunCleanupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunCleanupRequest) Reset() {
	*x = RunCleanupRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunCleanupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunCleanupRequest) ProtoMessage() {}

func (x *RunCleanupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunCleanupRequest.ProtoReflect.Descriptor instead.
func (*RunCleanupRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{21}
}

type RunCleanupResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	SessionsExpired int32                  `protobuf:"varint,1,opt,name=sessions_expired,json=sessionsExpired,proto3" json:"sessions_expired,omitempty"`
	JobsExpired     int32                  `protobuf:"varint,2,opt,name=jobs_expired,json=jobsExpired,proto3" json:"jobs_expired,omitempty"`
	BlobsDeleted    int32                  `protobuf:"varint,3,opt,name=blobs_deleted,json=blobsDeleted,proto3" json:"blobs_deleted,omitempty"`
	ErrorCount      int32                  `protobuf:"varint,4,opt,name=error_count,json=errorCount,proto3" json:"error_count,omitempty"`
	Status          string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *RunCleanupResponse) Reset() {
	*x = RunCleanupResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunCleanupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunCleanupResponse) ProtoMessage() {}

func (x *RunCleanupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunCleanupResponse.ProtoReflect.Descriptor instead.
func (*RunCleanupResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{22}
}

func (x *RunCleanupResponse) GetSessionsExpired() int32 {
	if x != nil {
		return x.SessionsExpired
	}
	return 0
}

func (x *RunCleanupResponse) GetJobsExpired() int32 {
	if x != nil {
		return x.JobsExpired
	}
	return 0
}

func (x *RunCleanupResponse) GetBlobsDeleted() int32 {
	if x != nil {
		return x.BlobsDeleted
	}
	return 0
}

func (x *RunCleanupResponse) GetErrorCount() int32 {
	if x != nil {
		return x.ErrorCount
	}
	return 0
}

func (x *RunCleanupResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type CreateUserRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Email           string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	StartingCredits int32                  `protobuf:"varint,2,opt,name=starting_credits,json=startingCredits,proto3" json:"starting_credits,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{23}
}

func (x *CreateUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateUserRequest) GetStartingCredits() int32 {
	if x != nil {
		return x.StartingCredits
	}
	return 0
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Balance       int32                  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{24}
}

func (x *CreateUserResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateUserResponse) GetBalance() int32 {
	if x != nil {
		return x.Balance
	}
	return 0
}

type AdjustCreditsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Delta         int32                  `protobuf:"varint,2,opt,name=delta,proto3" json:"delta,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdjustCreditsRequest) Reset() {
	*x = AdjustCreditsRequest{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdjustCreditsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdjustCreditsRequest) ProtoMessage() {}

func (x *AdjustCreditsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdjustCreditsRequest.ProtoReflect.Descriptor instead.
func (*AdjustCreditsRequest) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{25}
}

func (x *AdjustCreditsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AdjustCreditsRequest) GetDelta() int32 {
	if x != nil {
		return x.Delta
	}
	return 0
}

func (x *AdjustCreditsRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type AdjustCreditsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId string                 `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdjustCreditsResponse) Reset() {
	*x = AdjustCreditsResponse{}
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdjustCreditsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdjustCreditsResponse) ProtoMessage() {}

func (x *AdjustCreditsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractflow_v1_extractflow_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdjustCreditsResponse.ProtoReflect.Descriptor instead.
func (*AdjustCreditsResponse) Descriptor() ([]byte, []int) {
	return file_extractflow_v1_extractflow_proto_rawDescGZIP(), []int{26}
}

func (x *AdjustCreditsResponse) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

var File_extractflow_v1_extractflow_proto protoreflect.FileDescriptor

const file_extractflow_v1_extractflow_proto_rawDesc = "" +
	"\n" +
	" extractflow/v1/extractflow.proto\x12\x0eextractflow.v1\"B\n" +
	"\n" +
	"FileUpload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\xb1\x01\n" +
	"\x14CreateSessionRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x120\n" +
	"\x05files\x18\x02 \x03(\v2\x1a.extractflow.v1.FileUploadR\x05files\x12'\n" +
	"\x0fnaming_template\x18\x03 \x01(\fR\x0enamingTemplate\x12%\n" +
	"\x0eexport_columns\x18\x04 \x01(\fR\rexportColumns\"v\n" +
	"\x15CreateSessionResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1f\n" +
	"\vtotal_units\x18\x02 \x01(\x05R\n" +
	"totalUnits\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x03 \x01(\tR\texpiresAt\"Q\n" +
	"\x17GetSessionStatusRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\"\x92\x01\n" +
	"\x18GetSessionStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12'\n" +
	"\x0fprocessed_units\x18\x02 \x01(\x05R\x0eprocessedUnits\x12\x1f\n" +
	"\vtotal_units\x18\x03 \x01(\x05R\n" +
	"totalUnits\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\".\n" +
	"\x13ListSessionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xb9\x01\n" +
	"\aSession\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1f\n" +
	"\vtotal_units\x18\x03 \x01(\x05R\n" +
	"totalUnits\x12'\n" +
	"\x0fcompleted_units\x18\x04 \x01(\x05R\x0ecompletedUnits\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x06 \x01(\tR\texpiresAt\"K\n" +
	"\x14ListSessionsResponse\x123\n" +
	"\bsessions\x18\x01 \x03(\v2\x17.extractflow.v1.SessionR\bsessions\"N\n" +
	"\x14CancelSessionRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\"\x17\n" +
	"\x15CancelSessionResponse\"O\n" +
	"\x15DownloadBundleRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\"0\n" +
	"\x16DownloadBundleResponse\x12\x16\n" +
	"\x06bundle\x18\x01 \x01(\fR\x06bundle\",\n" +
	"\x11GetBalanceRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\".\n" +
	"\x12GetBalanceResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\x05R\abalance\"H\n" +
	"\x17ListTransactionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"\xaf\x01\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12#\n" +
	"\rcredits_delta\x18\x03 \x01(\x05R\fcreditsDelta\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"[\n" +
	"\x18ListTransactionsResponse\x12?\n" +
	"\ftransactions\x18\x01 \x03(\v2\x1b.extractflow.v1.TransactionR\ftransactions\"W\n" +
	"\x17AccelerateExpiryRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x02 \x01(\tR\texpiresAt\"\x1a\n" +
	"\x18AccelerateExpiryResponse\"8\n" +
	"\x17ReprocessSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\x1a\n" +
	"\x18ReprocessSessionResponse\"\x13\n" +
	"\x11RunCleanupRequest\"\xc0\x01\n" +
	"\x12RunCleanupResponse\x12)\n" +
	"\x10sessions_expired\x18\x01 \x01(\x05R\x0fsessionsExpired\x12!\n" +
	"\fjobs_expired\x18\x02 \x01(\x05R\vjobsExpired\x12#\n" +
	"\rblobs_deleted\x18\x03 \x01(\x05R\fblobsDeleted\x12\x1f\n" +
	"\verror_count\x18\x04 \x01(\x05R\n" +
	"errorCount\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\"T\n" +
	"\x11CreateUserRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12)\n" +
	"\x10starting_credits\x18\x02 \x01(\x05R\x0fstartingCredits\"G\n" +
	"\x12CreateUserResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x18\n" +
	"\abalance\x18\x02 \x01(\x05R\abalance\"]\n" +
	"\x14AdjustCreditsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05delta\x18\x02 \x01(\x05R\x05delta\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\">\n" +
	"\x15AdjustCreditsResponse\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\tR\rtransactionId2\xef\x03\n" +
	"\x0eSessionService\x12\\\n" +
	"\rCreateSession\x12$.extractflow.v1.CreateSessionRequest\x1a%.extractflow.v1.CreateSessionResponse\x12e\n" +
	"\x10GetSessionStatus\x12'.extractflow.v1.GetSessionStatusRequest\x1a(.extractflow.v1.GetSessionStatusResponse\x12Y\n" +
	"\fListSessions\x12#.extractflow.v1.ListSessionsRequest\x1a$.extractflow.v1.ListSessionsResponse\x12\\\n" +
	"\rCancelSession\x12$.extractflow.v1.CancelSessionRequest\x1a%.extractflow.v1.CancelSessionResponse\x12_\n" +
	"\x0eDownloadBundle\x12%.extractflow.v1.DownloadBundleRequest\x1a&.extractflow.v1.DownloadBundleResponse2\xcb\x01\n" +
	"\rLedgerService\x12S\n" +
	"\n" +
	"GetBalance\x12!.extractflow.v1.GetBalanceRequest\x1a\".extractflow.v1.GetBalanceResponse\x12e\n" +
	"\x10ListTransactions\x12'.extractflow.v1.ListTransactionsRequest\x1a(.extractflow.v1.ListTransactionsResponse2\xe4\x03\n" +
	"\fAdminService\x12S\n" +
	"\n" +
	"CreateUser\x12!.extractflow.v1.CreateUserRequest\x1a\".extractflow.v1.CreateUserResponse\x12e\n" +
	"\x10AccelerateExpiry\x12'.extractflow.v1.AccelerateExpiryRequest\x1a(.extractflow.v1.AccelerateExpiryResponse\x12e\n" +
	"\x10ReprocessSession\x12'.extractflow.v1.ReprocessSessionRequest\x1a(.extractflow.v1.ReprocessSessionResponse\x12S\n" +
	"\n" +
	"RunCleanup\x12!.extractflow.v1.RunCleanupRequest\x1a\".extractflow.v1.RunCleanupResponse\x12\\\n" +
	"\rAdjustCredits\x12$.extractflow.v1.AdjustCreditsRequest\x1a%.extractflow.v1.AdjustCreditsResponseBLZJgithub.com/tobi-adeyemi/extractflow/gen/proto/extractflow/v1;extractflowv1b\x06proto3"

var (
	file_extractflow_v1_extractflow_proto_rawDescOnce sync.Once
	file_extractflow_v1_extractflow_proto_rawDescData []byte
)

func file_extractflow_v1_extractflow_proto_rawDescGZIP() []byte {
	file_extractflow_v1_extractflow_proto_rawDescOnce.Do(func() {
		file_extractflow_v1_extractflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extractflow_v1_extractflow_proto_rawDesc), len(file_extractflow_v1_extractflow_proto_rawDesc)))
	})
	return file_extractflow_v1_extractflow_proto_rawDescData
}

var file_extractflow_v1_extractflow_proto_msgTypes = make([]protoimpl.MessageInfo, 27)
var file_extractflow_v1_extractflow_proto_goTypes = []any{
	(*FileUpload)(nil),               // 0: extractflow.v1.FileUpload
	(*CreateSessionRequest)(nil),     // 1: extractflow.v1.CreateSessionRequest
	(*CreateSessionResponse)(nil),    // 2: extractflow.v1.CreateSessionResponse
	(*GetSessionStatusRequest)(nil),  // 3: extractflow.v1.GetSessionStatusRequest
	(*GetSessionStatusResponse)(nil), // 4: extractflow.v1.GetSessionStatusResponse
	(*ListSessionsRequest)(nil),      // 5: extractflow.v1.ListSessionsRequest
	(*Session)(nil),                  // 6: extractflow.v1.Session
	(*ListSessionsResponse)(nil),     // 7: extractflow.v1.ListSessionsResponse
	(*CancelSessionRequest)(nil),     // 8: extractflow.v1.CancelSessionRequest
	(*CancelSessionResponse)(nil),    // 9: extractflow.v1.CancelSessionResponse
	(*DownloadBundleRequest)(nil),    // 10: extractflow.v1.DownloadBundleRequest
	(*DownloadBundleResponse)(nil),   // 11: extractflow.v1.DownloadBundleResponse
	(*GetBalanceRequest)(nil),        // 12: extractflow.v1.GetBalanceRequest
	(*GetBalanceResponse)(nil),       // 13: extractflow.v1.GetBalanceResponse
	(*ListTransactionsRequest)(nil),  // 14: extractflow.v1.ListTransactionsRequest
	(*Transaction)(nil),              // 15: extractflow.v1.Transaction
	(*ListTransactionsResponse)(nil), // 16: extractflow.v1.ListTransactionsResponse
	(*AccelerateExpiryRequest)(nil),  // 17: extractflow.v1.AccelerateExpiryRequest
	(*AccelerateExpiryResponse)(nil), // 18: extractflow.v1.AccelerateExpiryResponse
	(*ReprocessSessionRequest)(nil),  // 19: extractflow.v1.ReprocessSessionRequest
	(*ReprocessSessionResponse)(nil), // 20: extractflow.v1.ReprocessSessionResponse
	(*RunCleanupRequest)(nil),        // 21: extractflow.v1.RunCleanupRequest
	(*RunCleanupResponse)(nil),       // 22: extractflow.v1.RunCleanupResponse
	(*CreateUserRequest)(nil),        // 23: extractflow.v1.CreateUserRequest
	(*CreateUserResponse)(nil),       // 24: extractflow.v1.CreateUserResponse
	(*AdjustCreditsRequest)(nil),     // 25: extractflow.v1.AdjustCreditsRequest
	(*AdjustCreditsResponse)(nil),    // 26: extractflow.v1.AdjustCreditsResponse
}
var file_extractflow_v1_extractflow_proto_depIdxs = []int32{
	0,  // 0: extractflow.v1.CreateSessionRequest.files:type_name -> extractflow.v1.FileUpload
	6,  // 1: extractflow.v1.ListSessionsResponse.sessions:type_name -> extractflow.v1.Session
	15, // 2: extractflow.v1.ListTransactionsResponse.transactions:type_name -> extractflow.v1.Transaction
	1,  // 3: extractflow.v1.SessionService.CreateSession:input_type -> extractflow.v1.CreateSessionRequest
	3,  // 4: extractflow.v1.SessionService.GetSessionStatus:input_type -> extractflow.v1.GetSessionStatusRequest
	5,  // 5: extractflow.v1.SessionService.ListSessions:input_type -> extractflow.v1.ListSessionsRequest
	8,  // 6: extractflow.v1.SessionService.CancelSession:input_type -> extractflow.v1.CancelSessionRequest
	10, // 7: extractflow.v1.SessionService.DownloadBundle:input_type -> extractflow.v1.DownloadBundleRequest
	12, // 8: extractflow.v1.LedgerService.GetBalance:input_type -> extractflow.v1.GetBalanceRequest
	14, // 9: extractflow.v1.LedgerService.ListTransactions:input_type -> extractflow.v1.ListTransactionsRequest
	23, // 10: extractflow.v1.AdminService.CreateUser:input_type -> extractflow.v1.CreateUserRequest
	17, // 11: extractflow.v1.AdminService.AccelerateExpiry:input_type -> extractflow.v1.AccelerateExpiryRequest
	19, // 12: extractflow.v1.AdminService.ReprocessSession:input_type -> extractflow.v1.ReprocessSessionRequest
	21, // 13: extractflow.v1.AdminService.RunCleanup:input_type -> extractflow.v1.RunCleanupRequest
	25, // 14: extractflow.v1.AdminService.AdjustCredits:input_type -> extractflow.v1.AdjustCreditsRequest
	2,  // 15: extractflow.v1.SessionService.CreateSession:output_type -> extractflow.v1.CreateSessionResponse
	4,  // 16: extractflow.v1.SessionService.GetSessionStatus:output_type -> extractflow.v1.GetSessionStatusResponse
	7,  // 17: extractflow.v1.SessionService.ListSessions:output_type -> extractflow.v1.ListSessionsResponse
	9,  // 18: extractflow.v1.SessionService.CancelSession:output_type -> extractflow.v1.CancelSessionResponse
	11, // 19: extractflow.v1.SessionService.DownloadBundle:output_type -> extractflow.v1.DownloadBundleResponse
	13, // 20: extractflow.v1.LedgerService.GetBalance:output_type -> extractflow.v1.GetBalanceResponse
	16, // 21: extractflow.v1.LedgerService.ListTransactions:output_type -> extractflow.v1.ListTransactionsResponse
	24, // 22: extractflow.v1.AdminService.CreateUser:output_type -> extractflow.v1.CreateUserResponse
	18, // 23: extractflow.v1.AdminService.AccelerateExpiry:output_type -> extractflow.v1.AccelerateExpiryResponse
	20, // 24: extractflow.v1.AdminService.ReprocessSession:output_type -> extractflow.v1.ReprocessSessionResponse
	22, // 25: extractflow.v1.AdminService.RunCleanup:output_type -> extractflow.v1.RunCleanupResponse
	26, // 26: extractflow.v1.AdminService.AdjustCredits:output_type -> extractflow.v1.AdjustCreditsResponse
	15, // [15:27] is the sub-list for method output_type
	3,  // [3:15] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_extractflow_v1_extractflow_proto_init() }
func file_extractflow_v1_extractflow_proto_init() {
	if File_extractflow_v1_extractflow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extractflow_v1_extractflow_proto_rawDesc), len(file_extractflow_v1_extractflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   27,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_extractflow_v1_extractflow_proto_goTypes,
		DependencyIndexes: file_extractflow_v1_extractflow_proto_depIdxs,
		MessageInfos:      file_extractflow_v1_extractflow_proto_msgTypes,
	}.Build()
	File_extractflow_v1_extractflow_proto = out.File
	file_extractflow_v1_extractflow_proto_goTypes = nil
	file_extractflow_v1_extractflow_proto_depIdxs = nil
}
