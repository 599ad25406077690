// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: recruit/v1/recruit.proto

package recruitv1

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

type Pipeline struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Pipeline) Reset() {
	*x = Pipeline{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Pipeline) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Pipeline) ProtoMessage() {}

func (x *Pipeline) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Pipeline.ProtoReflect.Descriptor instead.
func (*Pipeline) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{0}
}

func (x *Pipeline) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Pipeline) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Pipeline) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Stage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PipelineId    string                 `protobuf:"bytes,2,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	OrderIndex    int32                  `protobuf:"varint,4,opt,name=order_index,json=orderIndex,proto3" json:"order_index,omitempty"`
	IsDefault     bool                   `protobuf:"varint,5,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Stage) Reset() {
	*x = Stage{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Stage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Stage) ProtoMessage() {}

func (x *Stage) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Stage.ProtoReflect.Descriptor instead.
func (*Stage) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{1}
}

func (x *Stage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Stage) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

func (x *Stage) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Stage) GetOrderIndex() int32 {
	if x != nil {
		return x.OrderIndex
	}
	return 0
}

func (x *Stage) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

type Candidate struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PipelineId        string                 `protobuf:"bytes,2,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	StageId           string                 `protobuf:"bytes,3,opt,name=stage_id,json=stageId,proto3" json:"stage_id,omitempty"`
	FullName          string                 `protobuf:"bytes,4,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Email             string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone             string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Source            string                 `protobuf:"bytes,7,opt,name=source,proto3" json:"source,omitempty"`
	ParsingConfidence int32                  `protobuf:"varint,8,opt,name=parsing_confidence,json=parsingConfidence,proto3" json:"parsing_confidence,omitempty"`
	MergedIntoId      string                 `protobuf:"bytes,9,opt,name=merged_into_id,json=mergedIntoId,proto3" json:"merged_into_id,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Candidate) Reset() {
	*x = Candidate{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Candidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Candidate) ProtoMessage() {}

func (x *Candidate) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Candidate.ProtoReflect.Descriptor instead.
func (*Candidate) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{2}
}

func (x *Candidate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Candidate) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

func (x *Candidate) GetStageId() string {
	if x != nil {
		return x.StageId
	}
	return ""
}

func (x *Candidate) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Candidate) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Candidate) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Candidate) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Candidate) GetParsingConfidence() int32 {
	if x != nil {
		return x.ParsingConfidence
	}
	return 0
}

func (x *Candidate) GetMergedIntoId() string {
	if x != nil {
		return x.MergedIntoId
	}
	return ""
}

func (x *Candidate) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Candidate) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ImportBatch struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PipelineId         string                 `protobuf:"bytes,2,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	Status             string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	TotalFiles         int32                  `protobuf:"varint,4,opt,name=total_files,json=totalFiles,proto3" json:"total_files,omitempty"`
	ProcessedCount     int32                  `protobuf:"varint,5,opt,name=processed_count,json=processedCount,proto3" json:"processed_count,omitempty"`
	SuccessCount       int32                  `protobuf:"varint,6,opt,name=success_count,json=successCount,proto3" json:"success_count,omitempty"`
	FailedCount        int32                  `protobuf:"varint,7,opt,name=failed_count,json=failedCount,proto3" json:"failed_count,omitempty"`
	DefaultCountryCode string                 `protobuf:"bytes,8,opt,name=default_country_code,json=defaultCountryCode,proto3" json:"default_country_code,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CompletedAt        string                 `protobuf:"bytes,10,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ImportBatch) Reset() {
	*x = ImportBatch{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportBatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportBatch) ProtoMessage() {}

func (x *ImportBatch) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportBatch.ProtoReflect.Descriptor instead.
func (*ImportBatch) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{3}
}

func (x *ImportBatch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportBatch) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

func (x *ImportBatch) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportBatch) GetTotalFiles() int32 {
	if x != nil {
		return x.TotalFiles
	}
	return 0
}

func (x *ImportBatch) GetProcessedCount() int32 {
	if x != nil {
		return x.ProcessedCount
	}
	return 0
}

func (x *ImportBatch) GetSuccessCount() int32 {
	if x != nil {
		return x.SuccessCount
	}
	return 0
}

func (x *ImportBatch) GetFailedCount() int32 {
	if x != nil {
		return x.FailedCount
	}
	return 0
}

func (x *ImportBatch) GetDefaultCountryCode() string {
	if x != nil {
		return x.DefaultCountryCode
	}
	return ""
}

func (x *ImportBatch) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ImportBatch) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type ImportItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BatchId       string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	CandidateId   string                 `protobuf:"bytes,3,opt,name=candidate_id,json=candidateId,proto3" json:"candidate_id,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,5,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileSize      int32                  `protobuf:"varint,6,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ProcessedAt   string                 `protobuf:"bytes,9,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportItem) Reset() {
	*x = ImportItem{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportItem) ProtoMessage() {}

func (x *ImportItem) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportItem.ProtoReflect.Descriptor instead.
func (*ImportItem) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{4}
}

func (x *ImportItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportItem) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *ImportItem) GetCandidateId() string {
	if x != nil {
		return x.CandidateId
	}
	return ""
}

func (x *ImportItem) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ImportItem) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ImportItem) GetFileSize() int32 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *ImportItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportItem) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ImportItem) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type RejectedFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectedFile) Reset() {
	*x = RejectedFile{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectedFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectedFile) ProtoMessage() {}

func (x *RejectedFile) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectedFile.ProtoReflect.Descriptor instead.
func (*RejectedFile) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{5}
}

func (x *RejectedFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *RejectedFile) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CreateBatchRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	PipelineId         string                 `protobuf:"bytes,1,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	DefaultCountryCode string                 `protobuf:"bytes,2,opt,name=default_country_code,json=defaultCountryCode,proto3" json:"default_country_code,omitempty"`
	CreatedBy          string                 `protobuf:"bytes,3,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateBatchRequest) Reset() {
	*x = CreateBatchRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBatchRequest) ProtoMessage() {}

func (x *CreateBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBatchRequest.ProtoReflect.Descriptor instead.
func (*CreateBatchRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{6}
}

func (x *CreateBatchRequest) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

func (x *CreateBatchRequest) GetDefaultCountryCode() string {
	if x != nil {
		return x.DefaultCountryCode
	}
	return ""
}

func (x *CreateBatchRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type CreateBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *ImportBatch           `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBatchResponse) Reset() {
	*x = CreateBatchResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBatchResponse) ProtoMessage() {}

func (x *CreateBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBatchResponse.ProtoReflect.Descriptor instead.
func (*CreateBatchResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{7}
}

func (x *CreateBatchResponse) GetBatch() *ImportBatch {
	if x != nil {
		return x.Batch
	}
	return nil
}

type FileUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Data          []byte                 `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileUpload) Reset() {
	*x = FileUpload{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileUpload) ProtoMessage() {}

func (x *FileUpload) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[8]
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
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{8}
}

func (x *FileUpload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FileUpload) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *FileUpload) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type UploadFilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Files         []*FileUpload          `protobuf:"bytes,2,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadFilesRequest) Reset() {
	*x = UploadFilesRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFilesRequest) ProtoMessage() {}

func (x *UploadFilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFilesRequest.ProtoReflect.Descriptor instead.
func (*UploadFilesRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{9}
}

func (x *UploadFilesRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *UploadFilesRequest) GetFiles() []*FileUpload {
	if x != nil {
		return x.Files
	}
	return nil
}

type UploadFilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      []*ImportItem          `protobuf:"bytes,1,rep,name=accepted,proto3" json:"accepted,omitempty"`
	Rejected      []*RejectedFile        `protobuf:"bytes,2,rep,name=rejected,proto3" json:"rejected,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadFilesResponse) Reset() {
	*x = UploadFilesResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFilesResponse) ProtoMessage() {}

func (x *UploadFilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFilesResponse.ProtoReflect.Descriptor instead.
func (*UploadFilesResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{10}
}

func (x *UploadFilesResponse) GetAccepted() []*ImportItem {
	if x != nil {
		return x.Accepted
	}
	return nil
}

func (x *UploadFilesResponse) GetRejected() []*RejectedFile {
	if x != nil {
		return x.Rejected
	}
	return nil
}

type ProcessBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBatchRequest) Reset() {
	*x = ProcessBatchRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchRequest) ProtoMessage() {}

func (x *ProcessBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchRequest.ProtoReflect.Descriptor instead.
func (*ProcessBatchRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{11}
}

func (x *ProcessBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type ProcessBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *ImportBatch           `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBatchResponse) Reset() {
	*x = ProcessBatchResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchResponse) ProtoMessage() {}

func (x *ProcessBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchResponse.ProtoReflect.Descriptor instead.
func (*ProcessBatchResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{12}
}

func (x *ProcessBatchResponse) GetBatch() *ImportBatch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *ProcessBatchResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type GetBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchRequest) Reset() {
	*x = GetBatchRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchRequest) ProtoMessage() {}

func (x *GetBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchRequest.ProtoReflect.Descriptor instead.
func (*GetBatchRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{13}
}

func (x *GetBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type GetBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *ImportBatch           `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	Items         []*ImportItem          `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchResponse) Reset() {
	*x = GetBatchResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchResponse) ProtoMessage() {}

func (x *GetBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchResponse.ProtoReflect.Descriptor instead.
func (*GetBatchResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{14}
}

func (x *GetBatchResponse) GetBatch() *ImportBatch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *GetBatchResponse) GetItems() []*ImportItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type DeleteBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBatchRequest) Reset() {
	*x = DeleteBatchRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBatchRequest) ProtoMessage() {}

func (x *DeleteBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBatchRequest.ProtoReflect.Descriptor instead.
func (*DeleteBatchRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type DeleteBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBatchResponse) Reset() {
	*x = DeleteBatchResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBatchResponse) ProtoMessage() {}

func (x *DeleteBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBatchResponse.ProtoReflect.Descriptor instead.
func (*DeleteBatchResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{16}
}

type GetCandidateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCandidateRequest) Reset() {
	*x = GetCandidateRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCandidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCandidateRequest) ProtoMessage() {}

func (x *GetCandidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCandidateRequest.ProtoReflect.Descriptor instead.
func (*GetCandidateRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{17}
}

func (x *GetCandidateRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetCandidateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Candidate     *Candidate             `protobuf:"bytes,1,opt,name=candidate,proto3" json:"candidate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCandidateResponse) Reset() {
	*x = GetCandidateResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCandidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCandidateResponse) ProtoMessage() {}

func (x *GetCandidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCandidateResponse.ProtoReflect.Descriptor instead.
func (*GetCandidateResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{18}
}

func (x *GetCandidateResponse) GetCandidate() *Candidate {
	if x != nil {
		return x.Candidate
	}
	return nil
}

type ListCandidatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PipelineId    string                 `protobuf:"bytes,1,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCandidatesRequest) Reset() {
	*x = ListCandidatesRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCandidatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCandidatesRequest) ProtoMessage() {}

func (x *ListCandidatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCandidatesRequest.ProtoReflect.Descriptor instead.
func (*ListCandidatesRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{19}
}

func (x *ListCandidatesRequest) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

type ListCandidatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Candidates    []*Candidate           `protobuf:"bytes,1,rep,name=candidates,proto3" json:"candidates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCandidatesResponse) Reset() {
	*x = ListCandidatesResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCandidatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCandidatesResponse) ProtoMessage() {}

func (x *ListCandidatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCandidatesResponse.ProtoReflect.Descriptor instead.
func (*ListCandidatesResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{20}
}

func (x *ListCandidatesResponse) GetCandidates() []*Candidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

type AddNoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CandidateId   string                 `protobuf:"bytes,1,opt,name=candidate_id,json=candidateId,proto3" json:"candidate_id,omitempty"`
	Body          string                 `protobuf:"bytes,2,opt,name=body,proto3" json:"body,omitempty"`
	CreatedBy     string                 `protobuf:"bytes,3,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddNoteRequest) Reset() {
	*x = AddNoteRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddNoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddNoteRequest) ProtoMessage() {}

func (x *AddNoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddNoteRequest.ProtoReflect.Descriptor instead.
func (*AddNoteRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{21}
}

func (x *AddNoteRequest) GetCandidateId() string {
	if x != nil {
		return x.CandidateId
	}
	return ""
}

func (x *AddNoteRequest) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

func (x *AddNoteRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type AddNoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NoteId        string                 `protobuf:"bytes,1,opt,name=note_id,json=noteId,proto3" json:"note_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddNoteResponse) Reset() {
	*x = AddNoteResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddNoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddNoteResponse) ProtoMessage() {}

func (x *AddNoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddNoteResponse.ProtoReflect.Descriptor instead.
func (*AddNoteResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{22}
}

func (x *AddNoteResponse) GetNoteId() string {
	if x != nil {
		return x.NoteId
	}
	return ""
}

type FindDuplicatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PipelineId    string                 `protobuf:"bytes,1,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindDuplicatesRequest) Reset() {
	*x = FindDuplicatesRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindDuplicatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindDuplicatesRequest) ProtoMessage() {}

func (x *FindDuplicatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindDuplicatesRequest.ProtoReflect.Descriptor instead.
func (*FindDuplicatesRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{23}
}

func (x *FindDuplicatesRequest) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

type DuplicateGroup struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Candidates    []*Candidate           `protobuf:"bytes,3,rep,name=candidates,proto3" json:"candidates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DuplicateGroup) Reset() {
	*x = DuplicateGroup{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DuplicateGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DuplicateGroup) ProtoMessage() {}

func (x *DuplicateGroup) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DuplicateGroup.ProtoReflect.Descriptor instead.
func (*DuplicateGroup) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{24}
}

func (x *DuplicateGroup) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *DuplicateGroup) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *DuplicateGroup) GetCandidates() []*Candidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

type FindDuplicatesResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Groups             []*DuplicateGroup      `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	GroupCount         int32                  `protobuf:"varint,2,opt,name=group_count,json=groupCount,proto3" json:"group_count,omitempty"`
	CandidatesInvolved int32                  `protobuf:"varint,3,opt,name=candidates_involved,json=candidatesInvolved,proto3" json:"candidates_involved,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *FindDuplicatesResponse) Reset() {
	*x = FindDuplicatesResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindDuplicatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindDuplicatesResponse) ProtoMessage() {}

func (x *FindDuplicatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindDuplicatesResponse.ProtoReflect.Descriptor instead.
func (*FindDuplicatesResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{25}
}

func (x *FindDuplicatesResponse) GetGroups() []*DuplicateGroup {
	if x != nil {
		return x.Groups
	}
	return nil
}

func (x *FindDuplicatesResponse) GetGroupCount() int32 {
	if x != nil {
		return x.GroupCount
	}
	return 0
}

func (x *FindDuplicatesResponse) GetCandidatesInvolved() int32 {
	if x != nil {
		return x.CandidatesInvolved
	}
	return 0
}

type MergeCandidatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	SourceIds     []string               `protobuf:"bytes,2,rep,name=source_ids,json=sourceIds,proto3" json:"source_ids,omitempty"`
	MergedBy      string                 `protobuf:"bytes,3,opt,name=merged_by,json=mergedBy,proto3" json:"merged_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MergeCandidatesRequest) Reset() {
	*x = MergeCandidatesRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeCandidatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeCandidatesRequest) ProtoMessage() {}

func (x *MergeCandidatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeCandidatesRequest.ProtoReflect.Descriptor instead.
func (*MergeCandidatesRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{26}
}

func (x *MergeCandidatesRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *MergeCandidatesRequest) GetSourceIds() []string {
	if x != nil {
		return x.SourceIds
	}
	return nil
}

func (x *MergeCandidatesRequest) GetMergedBy() string {
	if x != nil {
		return x.MergedBy
	}
	return ""
}

type MergeCandidatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Target        *Candidate             `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MergeCandidatesResponse) Reset() {
	*x = MergeCandidatesResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeCandidatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeCandidatesResponse) ProtoMessage() {}

func (x *MergeCandidatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeCandidatesResponse.ProtoReflect.Descriptor instead.
func (*MergeCandidatesResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{27}
}

func (x *MergeCandidatesResponse) GetTarget() *Candidate {
	if x != nil {
		return x.Target
	}
	return nil
}

type ExportCandidatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PipelineId    string                 `protobuf:"bytes,1,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCandidatesRequest) Reset() {
	*x = ExportCandidatesRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCandidatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCandidatesRequest) ProtoMessage() {}

func (x *ExportCandidatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCandidatesRequest.ProtoReflect.Descriptor instead.
func (*ExportCandidatesRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{28}
}

func (x *ExportCandidatesRequest) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

type ExportCandidatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCandidatesResponse) Reset() {
	*x = ExportCandidatesResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCandidatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCandidatesResponse) ProtoMessage() {}

func (x *ExportCandidatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCandidatesResponse.ProtoReflect.Descriptor instead.
func (*ExportCandidatesResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{29}
}

func (x *ExportCandidatesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportCandidatesResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type CreatePipelineRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePipelineRequest) Reset() {
	*x = CreatePipelineRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePipelineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePipelineRequest) ProtoMessage() {}

func (x *CreatePipelineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePipelineRequest.ProtoReflect.Descriptor instead.
func (*CreatePipelineRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{30}
}

func (x *CreatePipelineRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreatePipelineResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pipeline      *Pipeline              `protobuf:"bytes,1,opt,name=pipeline,proto3" json:"pipeline,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePipelineResponse) Reset() {
	*x = CreatePipelineResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePipelineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePipelineResponse) ProtoMessage() {}

func (x *CreatePipelineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePipelineResponse.ProtoReflect.Descriptor instead.
func (*CreatePipelineResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{31}
}

func (x *CreatePipelineResponse) GetPipeline() *Pipeline {
	if x != nil {
		return x.Pipeline
	}
	return nil
}

type ListPipelinesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPipelinesRequest) Reset() {
	*x = ListPipelinesRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPipelinesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPipelinesRequest) ProtoMessage() {}

func (x *ListPipelinesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPipelinesRequest.ProtoReflect.Descriptor instead.
func (*ListPipelinesRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{32}
}

type ListPipelinesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pipelines     []*Pipeline            `protobuf:"bytes,1,rep,name=pipelines,proto3" json:"pipelines,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPipelinesResponse) Reset() {
	*x = ListPipelinesResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPipelinesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPipelinesResponse) ProtoMessage() {}

func (x *ListPipelinesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPipelinesResponse.ProtoReflect.Descriptor instead.
func (*ListPipelinesResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{33}
}

func (x *ListPipelinesResponse) GetPipelines() []*Pipeline {
	if x != nil {
		return x.Pipelines
	}
	return nil
}

type AddStageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PipelineId    string                 `protobuf:"bytes,1,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	OrderIndex    int32                  `protobuf:"varint,3,opt,name=order_index,json=orderIndex,proto3" json:"order_index,omitempty"`
	IsDefault     bool                   `protobuf:"varint,4,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddStageRequest) Reset() {
	*x = AddStageRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddStageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddStageRequest) ProtoMessage() {}

func (x *AddStageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddStageRequest.ProtoReflect.Descriptor instead.
func (*AddStageRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{34}
}

func (x *AddStageRequest) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

func (x *AddStageRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddStageRequest) GetOrderIndex() int32 {
	if x != nil {
		return x.OrderIndex
	}
	return 0
}

func (x *AddStageRequest) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

type AddStageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         *Stage                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddStageResponse) Reset() {
	*x = AddStageResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddStageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddStageResponse) ProtoMessage() {}

func (x *AddStageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddStageResponse.ProtoReflect.Descriptor instead.
func (*AddStageResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{35}
}

func (x *AddStageResponse) GetStage() *Stage {
	if x != nil {
		return x.Stage
	}
	return nil
}

type ListStagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PipelineId    string                 `protobuf:"bytes,1,opt,name=pipeline_id,json=pipelineId,proto3" json:"pipeline_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStagesRequest) Reset() {
	*x = ListStagesRequest{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStagesRequest) ProtoMessage() {}

func (x *ListStagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStagesRequest.ProtoReflect.Descriptor instead.
func (*ListStagesRequest) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{36}
}

func (x *ListStagesRequest) GetPipelineId() string {
	if x != nil {
		return x.PipelineId
	}
	return ""
}

type ListStagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stages        []*Stage               `protobuf:"bytes,1,rep,name=stages,proto3" json:"stages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStagesResponse) Reset() {
	*x = ListStagesResponse{}
	mi := &file_recruit_v1_recruit_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStagesResponse) ProtoMessage() {}

func (x *ListStagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recruit_v1_recruit_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStagesResponse.ProtoReflect.Descriptor instead.
func (*ListStagesResponse) Descriptor() ([]byte, []int) {
	return file_recruit_v1_recruit_proto_rawDescGZIP(), []int{37}
}

func (x *ListStagesResponse) GetStages() []*Stage {
	if x != nil {
		return x.Stages
	}
	return nil
}

var File_recruit_v1_recruit_proto protoreflect.FileDescriptor

const file_recruit_v1_recruit_proto_rawDesc = "" +
	"\n" +
	"\x18recruit/v1/recruit.proto\x12\n" +
	"recruit.v1\"M\n" +
	"\bPipeline\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\"\x8c\x01\n" +
	"\x05Stage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vpipeline_id\x18\x02 \x01(\tR\n" +
	"pipelineId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1f\n" +
	"\vorder_index\x18\x04 \x01(\x05R\n" +
	"orderIndex\x12\x1d\n" +
	"\n" +
	"is_default\x18\x05 \x01(\bR\tisDefault\"\xcb\x02\n" +
	"\tCandidate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vpipeline_id\x18\x02 \x01(\tR\n" +
	"pipelineId\x12\x19\n" +
	"\bstage_id\x18\x03 \x01(\tR\astageId\x12\x1b\n" +
	"\tfull_name\x18\x04 \x01(\tR\bfullName\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x16\n" +
	"\x06source\x18\a \x01(\tR\x06source\x12-\n" +
	"\x12parsing_confidence\x18\b \x01(\x05R\x11parsingConfidence\x12$\n" +
	"\x0emerged_into_id\x18\t \x01(\tR\fmergedIntoId\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xdc\x02\n" +
	"\vImportBatch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vpipeline_id\x18\x02 \x01(\tR\n" +
	"pipelineId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vtotal_files\x18\x04 \x01(\x05R\n" +
	"totalFiles\x12'\n" +
	"\x0fprocessed_count\x18\x05 \x01(\x05R\x0eprocessedCount\x12#\n" +
	"\rsuccess_count\x18\x06 \x01(\x05R\fsuccessCount\x12!\n" +
	"\ffailed_count\x18\a \x01(\x05R\vfailedCount\x120\n" +
	"\x14default_country_code\x18\b \x01(\tR\x12defaultCountryCode\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12!\n" +
	"\fcompleted_at\x18\n" +
	" \x01(\tR\vcompletedAt\"\x96\x02\n" +
	"\n" +
	"ImportItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bbatch_id\x18\x02 \x01(\tR\abatchId\x12!\n" +
	"\fcandidate_id\x18\x03 \x01(\tR\vcandidateId\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x05 \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_size\x18\x06 \x01(\x05R\bfileSize\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12!\n" +
	"\fprocessed_at\x18\t \x01(\tR\vprocessedAt\"B\n" +
	"\fRejectedFile\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"\x86\x01\n" +
	"\x12CreateBatchRequest\x12\x1f\n" +
	"\vpipeline_id\x18\x01 \x01(\tR\n" +
	"pipelineId\x120\n" +
	"\x14default_country_code\x18\x02 \x01(\tR\x12defaultCountryCode\x12\x1d\n" +
	"\n" +
	"created_by\x18\x03 \x01(\tR\tcreatedBy\"D\n" +
	"\x13CreateBatchResponse\x12-\n" +
	"\x05batch\x18\x01 \x01(\v2\x17.recruit.v1.ImportBatchR\x05batch\"_\n" +
	"\n" +
	"FileUpload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x12\n" +
	"\x04data\x18\x03 \x01(\fR\x04data\"]\n" +
	"\x12UploadFilesRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12,\n" +
	"\x05files\x18\x02 \x03(\v2\x16.recruit.v1.FileUploadR\x05files\"\x7f\n" +
	"\x13UploadFilesResponse\x122\n" +
	"\baccepted\x18\x01 \x03(\v2\x16.recruit.v1.ImportItemR\baccepted\x124\n" +
	"\brejected\x18\x02 \x03(\v2\x18.recruit.v1.RejectedFileR\brejected\"0\n" +
	"\x13ProcessBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"]\n" +
	"\x14ProcessBatchResponse\x12-\n" +
	"\x05batch\x18\x01 \x01(\v2\x17.recruit.v1.ImportBatchR\x05batch\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\",\n" +
	"\x0fGetBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"o\n" +
	"\x10GetBatchResponse\x12-\n" +
	"\x05batch\x18\x01 \x01(\v2\x17.recruit.v1.ImportBatchR\x05batch\x12,\n" +
	"\x05items\x18\x02 \x03(\v2\x16.recruit.v1.ImportItemR\x05items\"/\n" +
	"\x12DeleteBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"\x15\n" +
	"\x13DeleteBatchResponse\"%\n" +
	"\x13GetCandidateRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"K\n" +
	"\x14GetCandidateResponse\x123\n" +
	"\tcandidate\x18\x01 \x01(\v2\x15.recruit.v1.CandidateR\tcandidate\"8\n" +
	"\x15ListCandidatesRequest\x12\x1f\n" +
	"\vpipeline_id\x18\x01 \x01(\tR\n" +
	"pipelineId\"O\n" +
	"\x16ListCandidatesResponse\x125\n" +
	"\n" +
	"candidates\x18\x01 \x03(\v2\x15.recruit.v1.CandidateR\n" +
	"candidates\"f\n" +
	"\x0eAddNoteRequest\x12!\n" +
	"\fcandidate_id\x18\x01 \x01(\tR\vcandidateId\x12\x12\n" +
	"\x04body\x18\x02 \x01(\tR\x04body\x12\x1d\n" +
	"\n" +
	"created_by\x18\x03 \x01(\tR\tcreatedBy\"*\n" +
	"\x0fAddNoteResponse\x12\x17\n" +
	"\anote_id\x18\x01 \x01(\tR\x06noteId\"8\n" +
	"\x15FindDuplicatesRequest\x12\x1f\n" +
	"\vpipeline_id\x18\x01 \x01(\tR\n" +
	"pipelineId\"q\n" +
	"\x0eDuplicateGroup\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x125\n" +
	"\n" +
	"candidates\x18\x03 \x03(\v2\x15.recruit.v1.CandidateR\n" +
	"candidates\"\x9e\x01\n" +
	"\x16FindDuplicatesResponse\x122\n" +
	"\x06groups\x18\x01 \x03(\v2\x1a.recruit.v1.DuplicateGroupR\x06groups\x12\x1f\n" +
	"\vgroup_count\x18\x02 \x01(\x05R\n" +
	"groupCount\x12/\n" +
	"\x13candidates_involved\x18\x03 \x01(\x05R\x12candidatesInvolved\"q\n" +
	"\x16MergeCandidatesRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\x12\x1d\n" +
	"\n" +
	"source_ids\x18\x02 \x03(\tR\tsourceIds\x12\x1b\n" +
	"\tmerged_by\x18\x03 \x01(\tR\bmergedBy\"H\n" +
	"\x17MergeCandidatesResponse\x12-\n" +
	"\x06target\x18\x01 \x01(\v2\x15.recruit.v1.CandidateR\x06target\":\n" +
	"\x17ExportCandidatesRequest\x12\x1f\n" +
	"\vpipeline_id\x18\x01 \x01(\tR\n" +
	"pipelineId\"J\n" +
	"\x18ExportCandidatesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"+\n" +
	"\x15CreatePipelineRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"J\n" +
	"\x16CreatePipelineResponse\x120\n" +
	"\bpipeline\x18\x01 \x01(\v2\x14.recruit.v1.PipelineR\bpipeline\"\x16\n" +
	"\x14ListPipelinesRequest\"K\n" +
	"\x15ListPipelinesResponse\x122\n" +
	"\tpipelines\x18\x01 \x03(\v2\x14.recruit.v1.PipelineR\tpipelines\"\x86\x01\n" +
	"\x0fAddStageRequest\x12\x1f\n" +
	"\vpipeline_id\x18\x01 \x01(\tR\n" +
	"pipelineId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1f\n" +
	"\vorder_index\x18\x03 \x01(\x05R\n" +
	"orderIndex\x12\x1d\n" +
	"\n" +
	"is_default\x18\x04 \x01(\bR\tisDefault\";\n" +
	"\x10AddStageResponse\x12'\n" +
	"\x05stage\x18\x01 \x01(\v2\x11.recruit.v1.StageR\x05stage\"4\n" +
	"\x11ListStagesRequest\x12\x1f\n" +
	"\vpipeline_id\x18\x01 \x01(\tR\n" +
	"pipelineId\"?\n" +
	"\x12ListStagesResponse\x12)\n" +
	"\x06stages\x18\x01 \x03(\v2\x11.recruit.v1.StageR\x06stages2\x99\x03\n" +
	"\rImportService\x12N\n" +
	"\vCreateBatch\x12\x1e.recruit.v1.CreateBatchRequest\x1a\x1f.recruit.v1.CreateBatchResponse\x12N\n" +
	"\vUploadFiles\x12\x1e.recruit.v1.UploadFilesRequest\x1a\x1f.recruit.v1.UploadFilesResponse\x12Q\n" +
	"\fProcessBatch\x12\x1f.recruit.v1.ProcessBatchRequest\x1a .recruit.v1.ProcessBatchResponse\x12E\n" +
	"\bGetBatch\x12\x1b.recruit.v1.GetBatchRequest\x1a\x1c.recruit.v1.GetBatchResponse\x12N\n" +
	"\vDeleteBatch\x12\x1e.recruit.v1.DeleteBatchRequest\x1a\x1f.recruit.v1.DeleteBatchResponse2\x96\x04\n" +
	"\x10CandidateService\x12Q\n" +
	"\fGetCandidate\x12\x1f.recruit.v1.GetCandidateRequest\x1a .recruit.v1.GetCandidateResponse\x12W\n" +
	"\x0eListCandidates\x12!.recruit.v1.ListCandidatesRequest\x1a\".recruit.v1.ListCandidatesResponse\x12B\n" +
	"\aAddNote\x12\x1a.recruit.v1.AddNoteRequest\x1a\x1b.recruit.v1.AddNoteResponse\x12W\n" +
	"\x0eFindDuplicates\x12!.recruit.v1.FindDuplicatesRequest\x1a\".recruit.v1.FindDuplicatesResponse\x12Z\n" +
	"\x0fMergeCandidates\x12\".recruit.v1.MergeCandidatesRequest\x1a#.recruit.v1.MergeCandidatesResponse\x12]\n" +
	"\x10ExportCandidates\x12#.recruit.v1.ExportCandidatesRequest\x1a$.recruit.v1.ExportCandidatesResponse2\xd4\x02\n" +
	"\x0fPipelineService\x12W\n" +
	"\x0eCreatePipeline\x12!.recruit.v1.CreatePipelineRequest\x1a\".recruit.v1.CreatePipelineResponse\x12T\n" +
	"\rListPipelines\x12 .recruit.v1.ListPipelinesRequest\x1a!.recruit.v1.ListPipelinesResponse\x12E\n" +
	"\bAddStage\x12\x1b.recruit.v1.AddStageRequest\x1a\x1c.recruit.v1.AddStageResponse\x12K\n" +
	"\n" +
	"ListStages\x12\x1d.recruit.v1.ListStagesRequest\x1a\x1e.recruit.v1.ListStagesResponseBAZ?github.com/talentops/recruit-crm/gen/proto/recruit/v1;recruitv1b\x06proto3"

var (
	file_recruit_v1_recruit_proto_rawDescOnce sync.Once
	file_recruit_v1_recruit_proto_rawDescData []byte
)

func file_recruit_v1_recruit_proto_rawDescGZIP() []byte {
	file_recruit_v1_recruit_proto_rawDescOnce.Do(func() {
		file_recruit_v1_recruit_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_recruit_v1_recruit_proto_rawDesc), len(file_recruit_v1_recruit_proto_rawDesc)))
	})
	return file_recruit_v1_recruit_proto_rawDescData
}

var file_recruit_v1_recruit_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_recruit_v1_recruit_proto_goTypes = []any{
	(*Pipeline)(nil),                 // 0: recruit.v1.Pipeline
	(*Stage)(nil),                    // 1: recruit.v1.Stage
	(*Candidate)(nil),                // 2: recruit.v1.Candidate
	(*ImportBatch)(nil),              // 3: recruit.v1.ImportBatch
	(*ImportItem)(nil),               // 4: recruit.v1.ImportItem
	(*RejectedFile)(nil),             // 5: recruit.v1.RejectedFile
	(*CreateBatchRequest)(nil),       // 6: recruit.v1.CreateBatchRequest
	(*CreateBatchResponse)(nil),      // 7: recruit.v1.CreateBatchResponse
	(*FileUpload)(nil),               // 8: recruit.v1.FileUpload
	(*UploadFilesRequest)(nil),       // 9: recruit.v1.UploadFilesRequest
	(*UploadFilesResponse)(nil),      // 10: recruit.v1.UploadFilesResponse
	(*ProcessBatchRequest)(nil),      // 11: recruit.v1.ProcessBatchRequest
	(*ProcessBatchResponse)(nil),     // 12: recruit.v1.ProcessBatchResponse
	(*GetBatchRequest)(nil),          // 13: recruit.v1.GetBatchRequest
	(*GetBatchResponse)(nil),         // 14: recruit.v1.GetBatchResponse
	(*DeleteBatchRequest)(nil),       // 15: recruit.v1.DeleteBatchRequest
	(*DeleteBatchResponse)(nil),      // 16: recruit.v1.DeleteBatchResponse
	(*GetCandidateRequest)(nil),      // 17: recruit.v1.GetCandidateRequest
	(*GetCandidateResponse)(nil),     // 18: recruit.v1.GetCandidateResponse
	(*ListCandidatesRequest)(nil),    // 19: recruit.v1.ListCandidatesRequest
	(*ListCandidatesResponse)(nil),   // 20: recruit.v1.ListCandidatesResponse
	(*AddNoteRequest)(nil),           // 21: recruit.v1.AddNoteRequest
	(*AddNoteResponse)(nil),          // 22: recruit.v1.AddNoteResponse
	(*FindDuplicatesRequest)(nil),    // 23: recruit.v1.FindDuplicatesRequest
	(*DuplicateGroup)(nil),           // 24: recruit.v1.DuplicateGroup
	(*FindDuplicatesResponse)(nil),   // 25: recruit.v1.FindDuplicatesResponse
	(*MergeCandidatesRequest)(nil),   // 26: recruit.v1.MergeCandidatesRequest
	(*MergeCandidatesResponse)(nil),  // 27: recruit.v1.MergeCandidatesResponse
	(*ExportCandidatesRequest)(nil),  // 28: recruit.v1.ExportCandidatesRequest
	(*ExportCandidatesResponse)(nil), // 29: recruit.v1.ExportCandidatesResponse
	(*CreatePipelineRequest)(nil),    // 30: recruit.v1.CreatePipelineRequest
	(*CreatePipelineResponse)(nil),   // 31: recruit.v1.CreatePipelineResponse
	(*ListPipelinesRequest)(nil),     // 32: recruit.v1.ListPipelinesRequest
	(*ListPipelinesResponse)(nil),    // 33: recruit.v1.ListPipelinesResponse
	(*AddStageRequest)(nil),          // 34: recruit.v1.AddStageRequest
	(*AddStageResponse)(nil),         // 35: recruit.v1.AddStageResponse
	(*ListStagesRequest)(nil),        // 36: recruit.v1.ListStagesRequest
	(*ListStagesResponse)(nil),       // 37: recruit.v1.ListStagesResponse
}
var file_recruit_v1_recruit_proto_depIdxs = []int32{
	3,  // 0: recruit.v1.CreateBatchResponse.batch:type_name -> recruit.v1.ImportBatch
	8,  // 1: recruit.v1.UploadFilesRequest.files:type_name -> recruit.v1.FileUpload
	4,  // 2: recruit.v1.UploadFilesResponse.accepted:type_name -> recruit.v1.ImportItem
	5,  // 3: recruit.v1.UploadFilesResponse.rejected:type_name -> recruit.v1.RejectedFile
	3,  // 4: recruit.v1.ProcessBatchResponse.batch:type_name -> recruit.v1.ImportBatch
	3,  // 5: recruit.v1.GetBatchResponse.batch:type_name -> recruit.v1.ImportBatch
	4,  // 6: recruit.v1.GetBatchResponse.items:type_name -> recruit.v1.ImportItem
	2,  // 7: recruit.v1.GetCandidateResponse.candidate:type_name -> recruit.v1.Candidate
	2,  // 8: recruit.v1.ListCandidatesResponse.candidates:type_name -> recruit.v1.Candidate
	2,  // 9: recruit.v1.DuplicateGroup.candidates:type_name -> recruit.v1.Candidate
	24, // 10: recruit.v1.FindDuplicatesResponse.groups:type_name -> recruit.v1.DuplicateGroup
	2,  // 11: recruit.v1.MergeCandidatesResponse.target:type_name -> recruit.v1.Candidate
	0,  // 12: recruit.v1.CreatePipelineResponse.pipeline:type_name -> recruit.v1.Pipeline
	0,  // 13: recruit.v1.ListPipelinesResponse.pipelines:type_name -> recruit.v1.Pipeline
	1,  // 14: recruit.v1.AddStageResponse.stage:type_name -> recruit.v1.Stage
	1,  // 15: recruit.v1.ListStagesResponse.stages:type_name -> recruit.v1.Stage
	6,  // 16: recruit.v1.ImportService.CreateBatch:input_type -> recruit.v1.CreateBatchRequest
	9,  // 17: recruit.v1.ImportService.UploadFiles:input_type -> recruit.v1.UploadFilesRequest
	11, // 18: recruit.v1.ImportService.ProcessBatch:input_type -> recruit.v1.ProcessBatchRequest
	13, // 19: recruit.v1.ImportService.GetBatch:input_type -> recruit.v1.GetBatchRequest
	15, // 20: recruit.v1.ImportService.DeleteBatch:input_type -> recruit.v1.DeleteBatchRequest
	17, // 21: recruit.v1.CandidateService.GetCandidate:input_type -> recruit.v1.GetCandidateRequest
	19, // 22: recruit.v1.CandidateService.ListCandidates:input_type -> recruit.v1.ListCandidatesRequest
	21, // 23: recruit.v1.CandidateService.AddNote:input_type -> recruit.v1.AddNoteRequest
	23, // 24: recruit.v1.CandidateService.FindDuplicates:input_type -> recruit.v1.FindDuplicatesRequest
	26, // 25: recruit.v1.CandidateService.MergeCandidates:input_type -> recruit.v1.MergeCandidatesRequest
	28, // 26: recruit.v1.CandidateService.ExportCandidates:input_type -> recruit.v1.ExportCandidatesRequest
	30, // 27: recruit.v1.PipelineService.CreatePipeline:input_type -> recruit.v1.CreatePipelineRequest
	32, // 28: recruit.v1.PipelineService.ListPipelines:input_type -> recruit.v1.ListPipelinesRequest
	34, // 29: recruit.v1.PipelineService.AddStage:input_type -> recruit.v1.AddStageRequest
	36, // 30: recruit.v1.PipelineService.ListStages:input_type -> recruit.v1.ListStagesRequest
	7,  // 31: recruit.v1.ImportService.CreateBatch:output_type -> recruit.v1.CreateBatchResponse
	10, // 32: recruit.v1.ImportService.UploadFiles:output_type -> recruit.v1.UploadFilesResponse
	12, // 33: recruit.v1.ImportService.ProcessBatch:output_type -> recruit.v1.ProcessBatchResponse
	14, // 34: recruit.v1.ImportService.GetBatch:output_type -> recruit.v1.GetBatchResponse
	16, // 35: recruit.v1.ImportService.DeleteBatch:output_type -> recruit.v1.DeleteBatchResponse
	18, // 36: recruit.v1.CandidateService.GetCandidate:output_type -> recruit.v1.GetCandidateResponse
	20, // 37: recruit.v1.CandidateService.ListCandidates:output_type -> recruit.v1.ListCandidatesResponse
	22, // 38: recruit.v1.CandidateService.AddNote:output_type -> recruit.v1.AddNoteResponse
	25, // 39: recruit.v1.CandidateService.FindDuplicates:output_type -> recruit.v1.FindDuplicatesResponse
	27, // 40: recruit.v1.CandidateService.MergeCandidates:output_type -> recruit.v1.MergeCandidatesResponse
	29, // 41: recruit.v1.CandidateService.ExportCandidates:output_type -> recruit.v1.ExportCandidatesResponse
	31, // 42: recruit.v1.PipelineService.CreatePipeline:output_type -> recruit.v1.CreatePipelineResponse
	33, // 43: recruit.v1.PipelineService.ListPipelines:output_type -> recruit.v1.ListPipelinesResponse
	35, // 44: recruit.v1.PipelineService.AddStage:output_type -> recruit.v1.AddStageResponse
	37, // 45: recruit.v1.PipelineService.ListStages:output_type -> recruit.v1.ListStagesResponse
	31, // [31:46] is the sub-list for method output_type
	16, // [16:31] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_recruit_v1_recruit_proto_init() }
func file_recruit_v1_recruit_proto_init() {
	if File_recruit_v1_recruit_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_recruit_v1_recruit_proto_rawDesc), len(file_recruit_v1_recruit_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_recruit_v1_recruit_proto_goTypes,
		DependencyIndexes: file_recruit_v1_recruit_proto_depIdxs,
		MessageInfos:      file_recruit_v1_recruit_proto_msgTypes,
	}.Build()
	File_recruit_v1_recruit_proto = out.File
	file_recruit_v1_recruit_proto_goTypes = nil
	file_recruit_v1_recruit_proto_depIdxs = nil
}
