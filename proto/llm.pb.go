// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/llm.proto

package llmv1

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

type CompleteRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Run correlation id, echoed into sidecar logs.
	RunId         string          `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Platform      *PlatformConfig `protobuf:"bytes,2,opt,name=platform,proto3" json:"platform,omitempty"`
	SystemPrompt  string          `protobuf:"bytes,3,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	Messages      []*Message      `protobuf:"bytes,4,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteRequest) Reset() {
	*x = CompleteRequest{}
	mi := &file_proto_llm_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteRequest) ProtoMessage() {}

func (x *CompleteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteRequest.ProtoReflect.Descriptor instead.
func (*CompleteRequest) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{0}
}

func (x *CompleteRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *CompleteRequest) GetPlatform() *PlatformConfig {
	if x != nil {
		return x.Platform
	}
	return nil
}

func (x *CompleteRequest) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *CompleteRequest) GetMessages() []*Message {
	if x != nil {
		return x.Messages
	}
	return nil
}

type Message struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"` // "system", "user", "assistant"
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Message) Reset() {
	*x = Message{}
	mi := &file_proto_llm_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Message) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Message.ProtoReflect.Descriptor instead.
func (*Message) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{1}
}

func (x *Message) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Message) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

// PlatformConfig selects the upstream provider for this request. Forwarded
// verbatim so runs sharing a sidecar can use different models.
type PlatformConfig struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Provider string                 `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"` // "openai", "anthropic", "google", ...
	Model    string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	// Name of the environment variable on the sidecar holding the API key.
	// The key itself never crosses the wire.
	ApiKeyEnv     string  `protobuf:"bytes,3,opt,name=api_key_env,json=apiKeyEnv,proto3" json:"api_key_env,omitempty"`
	BaseUrl       string  `protobuf:"bytes,4,opt,name=base_url,json=baseUrl,proto3" json:"base_url,omitempty"`
	Temperature   float64 `protobuf:"fixed64,5,opt,name=temperature,proto3" json:"temperature,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlatformConfig) Reset() {
	*x = PlatformConfig{}
	mi := &file_proto_llm_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlatformConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlatformConfig) ProtoMessage() {}

func (x *PlatformConfig) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlatformConfig.ProtoReflect.Descriptor instead.
func (*PlatformConfig) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{2}
}

func (x *PlatformConfig) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *PlatformConfig) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *PlatformConfig) GetApiKeyEnv() string {
	if x != nil {
		return x.ApiKeyEnv
	}
	return ""
}

func (x *PlatformConfig) GetBaseUrl() string {
	if x != nil {
		return x.BaseUrl
	}
	return ""
}

func (x *PlatformConfig) GetTemperature() float64 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

type CompleteChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Content:
	//
	//	*CompleteChunk_Text
	//	*CompleteChunk_Reasoning
	//	*CompleteChunk_Usage
	//	*CompleteChunk_Error
	//	*CompleteChunk_Skipped
	Content isCompleteChunk_Content `protobuf_oneof:"content"`
	// Set on the last chunk of the stream. May arrive with no content.
	IsFinal       bool `protobuf:"varint,6,opt,name=is_final,json=isFinal,proto3" json:"is_final,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteChunk) Reset() {
	*x = CompleteChunk{}
	mi := &file_proto_llm_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteChunk) ProtoMessage() {}

func (x *CompleteChunk) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteChunk.ProtoReflect.Descriptor instead.
func (*CompleteChunk) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{3}
}

func (x *CompleteChunk) GetContent() isCompleteChunk_Content {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *CompleteChunk) GetText() *TextDelta {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Text); ok {
			return x.Text
		}
	}
	return nil
}

func (x *CompleteChunk) GetReasoning() *ReasoningDelta {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Reasoning); ok {
			return x.Reasoning
		}
	}
	return nil
}

func (x *CompleteChunk) GetUsage() *UsageInfo {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Usage); ok {
			return x.Usage
		}
	}
	return nil
}

func (x *CompleteChunk) GetError() *ErrorInfo {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Error); ok {
			return x.Error
		}
	}
	return nil
}

func (x *CompleteChunk) GetSkipped() *SkippedInfo {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Skipped); ok {
			return x.Skipped
		}
	}
	return nil
}

func (x *CompleteChunk) GetIsFinal() bool {
	if x != nil {
		return x.IsFinal
	}
	return false
}

type isCompleteChunk_Content interface {
	isCompleteChunk_Content()
}

type CompleteChunk_Text struct {
	Text *TextDelta `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type CompleteChunk_Reasoning struct {
	Reasoning *ReasoningDelta `protobuf:"bytes,2,opt,name=reasoning,proto3,oneof"`
}

type CompleteChunk_Usage struct {
	Usage *UsageInfo `protobuf:"bytes,3,opt,name=usage,proto3,oneof"`
}

type CompleteChunk_Error struct {
	Error *ErrorInfo `protobuf:"bytes,4,opt,name=error,proto3,oneof"`
}

type CompleteChunk_Skipped struct {
	Skipped *SkippedInfo `protobuf:"bytes,5,opt,name=skipped,proto3,oneof"`
}

func (*CompleteChunk_Text) isCompleteChunk_Content() {}

func (*CompleteChunk_Reasoning) isCompleteChunk_Content() {}

func (*CompleteChunk_Usage) isCompleteChunk_Content() {}

func (*CompleteChunk_Error) isCompleteChunk_Content() {}

func (*CompleteChunk_Skipped) isCompleteChunk_Content() {}

type TextDelta struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TextDelta) Reset() {
	*x = TextDelta{}
	mi := &file_proto_llm_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TextDelta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TextDelta) ProtoMessage() {}

func (x *TextDelta) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TextDelta.ProtoReflect.Descriptor instead.
func (*TextDelta) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{4}
}

func (x *TextDelta) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

// ReasoningDelta carries model thinking output when the provider exposes it.
type ReasoningDelta struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReasoningDelta) Reset() {
	*x = ReasoningDelta{}
	mi := &file_proto_llm_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReasoningDelta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReasoningDelta) ProtoMessage() {}

func (x *ReasoningDelta) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReasoningDelta.ProtoReflect.Descriptor instead.
func (*ReasoningDelta) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{5}
}

func (x *ReasoningDelta) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type UsageInfo struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	PromptTokens     int32                  `protobuf:"varint,1,opt,name=prompt_tokens,json=promptTokens,proto3" json:"prompt_tokens,omitempty"`
	CompletionTokens int32                  `protobuf:"varint,2,opt,name=completion_tokens,json=completionTokens,proto3" json:"completion_tokens,omitempty"`
	TotalTokens      int32                  `protobuf:"varint,3,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *UsageInfo) Reset() {
	*x = UsageInfo{}
	mi := &file_proto_llm_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UsageInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UsageInfo) ProtoMessage() {}

func (x *UsageInfo) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UsageInfo.ProtoReflect.Descriptor instead.
func (*UsageInfo) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{6}
}

func (x *UsageInfo) GetPromptTokens() int32 {
	if x != nil {
		return x.PromptTokens
	}
	return 0
}

func (x *UsageInfo) GetCompletionTokens() int32 {
	if x != nil {
		return x.CompletionTokens
	}
	return 0
}

func (x *UsageInfo) GetTotalTokens() int32 {
	if x != nil {
		return x.TotalTokens
	}
	return 0
}

type ErrorInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Retryable     bool                   `protobuf:"varint,3,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorInfo) Reset() {
	*x = ErrorInfo{}
	mi := &file_proto_llm_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorInfo) ProtoMessage() {}

func (x *ErrorInfo) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorInfo.ProtoReflect.Descriptor instead.
func (*ErrorInfo) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{7}
}

func (x *ErrorInfo) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ErrorInfo) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *ErrorInfo) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

// SkippedInfo marks a request the provider declined without an error, such
// as a safety filter. The caller keeps the source text untranslated.
type SkippedInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SkippedInfo) Reset() {
	*x = SkippedInfo{}
	mi := &file_proto_llm_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SkippedInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkippedInfo) ProtoMessage() {}

func (x *SkippedInfo) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SkippedInfo.ProtoReflect.Descriptor instead.
func (*SkippedInfo) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{8}
}

func (x *SkippedInfo) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type RecognizeEntitiesRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Text     string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Language string                 `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	// Entity labels to keep, e.g. PERSON, ORG. Empty = sidecar default set.
	EntityTypes   []string `protobuf:"bytes,3,rep,name=entity_types,json=entityTypes,proto3" json:"entity_types,omitempty"`
	Model         string   `protobuf:"bytes,4,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeEntitiesRequest) Reset() {
	*x = RecognizeEntitiesRequest{}
	mi := &file_proto_llm_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeEntitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeEntitiesRequest) ProtoMessage() {}

func (x *RecognizeEntitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeEntitiesRequest.ProtoReflect.Descriptor instead.
func (*RecognizeEntitiesRequest) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{9}
}

func (x *RecognizeEntitiesRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *RecognizeEntitiesRequest) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *RecognizeEntitiesRequest) GetEntityTypes() []string {
	if x != nil {
		return x.EntityTypes
	}
	return nil
}

func (x *RecognizeEntitiesRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type RecognizeEntitiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entities      []*Entity              `protobuf:"bytes,1,rep,name=entities,proto3" json:"entities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeEntitiesResponse) Reset() {
	*x = RecognizeEntitiesResponse{}
	mi := &file_proto_llm_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeEntitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeEntitiesResponse) ProtoMessage() {}

func (x *RecognizeEntitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeEntitiesResponse.ProtoReflect.Descriptor instead.
func (*RecognizeEntitiesResponse) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{10}
}

func (x *RecognizeEntitiesResponse) GetEntities() []*Entity {
	if x != nil {
		return x.Entities
	}
	return nil
}

type Entity struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Text  string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Label string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	// Occurrences within the request text.
	Count         int32 `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Entity) Reset() {
	*x = Entity{}
	mi := &file_proto_llm_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Entity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Entity) ProtoMessage() {}

func (x *Entity) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Entity.ProtoReflect.Descriptor instead.
func (*Entity) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{11}
}

func (x *Entity) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Entity) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Entity) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type EmbedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Texts         []string               `protobuf:"bytes,1,rep,name=texts,proto3" json:"texts,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmbedRequest) Reset() {
	*x = EmbedRequest{}
	mi := &file_proto_llm_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmbedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmbedRequest) ProtoMessage() {}

func (x *EmbedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmbedRequest.ProtoReflect.Descriptor instead.
func (*EmbedRequest) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{12}
}

func (x *EmbedRequest) GetTexts() []string {
	if x != nil {
		return x.Texts
	}
	return nil
}

func (x *EmbedRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type EmbedResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// One embedding per input text, in request order.
	Embeddings    []*Embedding `protobuf:"bytes,1,rep,name=embeddings,proto3" json:"embeddings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmbedResponse) Reset() {
	*x = EmbedResponse{}
	mi := &file_proto_llm_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmbedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmbedResponse) ProtoMessage() {}

func (x *EmbedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmbedResponse.ProtoReflect.Descriptor instead.
func (*EmbedResponse) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{13}
}

func (x *EmbedResponse) GetEmbeddings() []*Embedding {
	if x != nil {
		return x.Embeddings
	}
	return nil
}

type Embedding struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []float32              `protobuf:"fixed32,1,rep,packed,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Embedding) Reset() {
	*x = Embedding{}
	mi := &file_proto_llm_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Embedding) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Embedding) ProtoMessage() {}

func (x *Embedding) ProtoReflect() protoreflect.Message {
	mi := &file_proto_llm_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Embedding.ProtoReflect.Descriptor instead.
func (*Embedding) Descriptor() ([]byte, []int) {
	return file_proto_llm_proto_rawDescGZIP(), []int{14}
}

func (x *Embedding) GetValues() []float32 {
	if x != nil {
		return x.Values
	}
	return nil
}

var File_proto_llm_proto protoreflect.FileDescriptor

const file_proto_llm_proto_rawDesc = "" +
	"\n" +
	"\x0fproto/llm.proto\x12\x11linguaflow.llm.v1\"\xc4\x01\n" +
	"\x0fCompleteRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12=\n" +
	"\bplatform\x18\x02 \x01(\v2!.linguaflow.llm.v1.PlatformConfigR\bplatform\x12#\n" +
	"\rsystem_prompt\x18\x03 \x01(\tR\fsystemPrompt\x126\n" +
	"\bmessages\x18\x04 \x03(\v2\x1a.linguaflow.llm.v1.MessageR\bmessages\"7\n" +
	"\aMessage\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"\x9f\x01\n" +
	"\x0ePlatformConfig\x12\x1a\n" +
	"\bprovider\x18\x01 \x01(\tR\bprovider\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\x12\x1e\n" +
	"\vapi_key_env\x18\x03 \x01(\tR\tapiKeyEnv\x12\x19\n" +
	"\bbase_url\x18\x04 \x01(\tR\abaseUrl\x12 \n" +
	"\vtemperature\x18\x05 \x01(\x01R\vtemperature\"\xd4\x02\n" +
	"\rCompleteChunk\x122\n" +
	"\x04text\x18\x01 \x01(\v2\x1c.linguaflow.llm.v1.TextDeltaH\x00R\x04text\x12A\n" +
	"\treasoning\x18\x02 \x01(\v2!.linguaflow.llm.v1.ReasoningDeltaH\x00R\treasoning\x124\n" +
	"\x05usage\x18\x03 \x01(\v2\x1c.linguaflow.llm.v1.UsageInfoH\x00R\x05usage\x124\n" +
	"\x05error\x18\x04 \x01(\v2\x1c.linguaflow.llm.v1.ErrorInfoH\x00R\x05error\x12:\n" +
	"\askipped\x18\x05 \x01(\v2\x1e.linguaflow.llm.v1.SkippedInfoH\x00R\askipped\x12\x19\n" +
	"\bis_final\x18\x06 \x01(\bR\aisFinalB\t\n" +
	"\acontent\"%\n" +
	"\tTextDelta\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\"*\n" +
	"\x0eReasoningDelta\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\"\x80\x01\n" +
	"\tUsageInfo\x12#\n" +
	"\rprompt_tokens\x18\x01 \x01(\x05R\fpromptTokens\x12+\n" +
	"\x11completion_tokens\x18\x02 \x01(\x05R\x10completionTokens\x12!\n" +
	"\ftotal_tokens\x18\x03 \x01(\x05R\vtotalTokens\"W\n" +
	"\tErrorInfo\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x1c\n" +
	"\tretryable\x18\x03 \x01(\bR\tretryable\"%\n" +
	"\vSkippedInfo\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"\x83\x01\n" +
	"\x18RecognizeEntitiesRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\x12!\n" +
	"\fentity_types\x18\x03 \x03(\tR\ventityTypes\x12\x14\n" +
	"\x05model\x18\x04 \x01(\tR\x05model\"R\n" +
	"\x19RecognizeEntitiesResponse\x125\n" +
	"\bentities\x18\x01 \x03(\v2\x19.linguaflow.llm.v1.EntityR\bentities\"H\n" +
	"\x06Entity\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x14\n" +
	"\x05count\x18\x03 \x01(\x05R\x05count\":\n" +
	"\fEmbedRequest\x12\x14\n" +
	"\x05texts\x18\x01 \x03(\tR\x05texts\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\"M\n" +
	"\rEmbedResponse\x12<\n" +
	"\n" +
	"embeddings\x18\x01 \x03(\v2\x1c.linguaflow.llm.v1.EmbeddingR\n" +
	"embeddings\"#\n" +
	"\tEmbedding\x12\x16\n" +
	"\x06values\x18\x01 \x03(\x02R\x06values2\x9c\x02\n" +
	"\n" +
	"LLMService\x12R\n" +
	"\bComplete\x12\".linguaflow.llm.v1.CompleteRequest\x1a .linguaflow.llm.v1.CompleteChunk0\x01\x12n\n" +
	"\x11RecognizeEntities\x12+.linguaflow.llm.v1.RecognizeEntitiesRequest\x1a,.linguaflow.llm.v1.RecognizeEntitiesResponse\x12J\n" +
	"\x05Embed\x12\x1f.linguaflow.llm.v1.EmbedRequest\x1a .linguaflow.llm.v1.EmbedResponseB.Z,github.com/linguaflow/linguaflow/proto;llmv1b\x06proto3"

var (
	file_proto_llm_proto_rawDescOnce sync.Once
	file_proto_llm_proto_rawDescData []byte
)

func file_proto_llm_proto_rawDescGZIP() []byte {
	file_proto_llm_proto_rawDescOnce.Do(func() {
		file_proto_llm_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_llm_proto_rawDesc), len(file_proto_llm_proto_rawDesc)))
	})
	return file_proto_llm_proto_rawDescData
}

var file_proto_llm_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_proto_llm_proto_goTypes = []any{
	(*CompleteRequest)(nil),           // 0: linguaflow.llm.v1.CompleteRequest
	(*Message)(nil),                   // 1: linguaflow.llm.v1.Message
	(*PlatformConfig)(nil),            // 2: linguaflow.llm.v1.PlatformConfig
	(*CompleteChunk)(nil),             // 3: linguaflow.llm.v1.CompleteChunk
	(*TextDelta)(nil),                 // 4: linguaflow.llm.v1.TextDelta
	(*ReasoningDelta)(nil),            // 5: linguaflow.llm.v1.ReasoningDelta
	(*UsageInfo)(nil),                 // 6: linguaflow.llm.v1.UsageInfo
	(*ErrorInfo)(nil),                 // 7: linguaflow.llm.v1.ErrorInfo
	(*SkippedInfo)(nil),               // 8: linguaflow.llm.v1.SkippedInfo
	(*RecognizeEntitiesRequest)(nil),  // 9: linguaflow.llm.v1.RecognizeEntitiesRequest
	(*RecognizeEntitiesResponse)(nil), // 10: linguaflow.llm.v1.RecognizeEntitiesResponse
	(*Entity)(nil),                    // 11: linguaflow.llm.v1.Entity
	(*EmbedRequest)(nil),              // 12: linguaflow.llm.v1.EmbedRequest
	(*EmbedResponse)(nil),             // 13: linguaflow.llm.v1.EmbedResponse
	(*Embedding)(nil),                 // 14: linguaflow.llm.v1.Embedding
}
var file_proto_llm_proto_depIdxs = []int32{
	2,  // 0: linguaflow.llm.v1.CompleteRequest.platform:type_name -> linguaflow.llm.v1.PlatformConfig
	1,  // 1: linguaflow.llm.v1.CompleteRequest.messages:type_name -> linguaflow.llm.v1.Message
	4,  // 2: linguaflow.llm.v1.CompleteChunk.text:type_name -> linguaflow.llm.v1.TextDelta
	5,  // 3: linguaflow.llm.v1.CompleteChunk.reasoning:type_name -> linguaflow.llm.v1.ReasoningDelta
	6,  // 4: linguaflow.llm.v1.CompleteChunk.usage:type_name -> linguaflow.llm.v1.UsageInfo
	7,  // 5: linguaflow.llm.v1.CompleteChunk.error:type_name -> linguaflow.llm.v1.ErrorInfo
	8,  // 6: linguaflow.llm.v1.CompleteChunk.skipped:type_name -> linguaflow.llm.v1.SkippedInfo
	11, // 7: linguaflow.llm.v1.RecognizeEntitiesResponse.entities:type_name -> linguaflow.llm.v1.Entity
	14, // 8: linguaflow.llm.v1.EmbedResponse.embeddings:type_name -> linguaflow.llm.v1.Embedding
	0,  // 9: linguaflow.llm.v1.LLMService.Complete:input_type -> linguaflow.llm.v1.CompleteRequest
	9,  // 10: linguaflow.llm.v1.LLMService.RecognizeEntities:input_type -> linguaflow.llm.v1.RecognizeEntitiesRequest
	12, // 11: linguaflow.llm.v1.LLMService.Embed:input_type -> linguaflow.llm.v1.EmbedRequest
	3,  // 12: linguaflow.llm.v1.LLMService.Complete:output_type -> linguaflow.llm.v1.CompleteChunk
	10, // 13: linguaflow.llm.v1.LLMService.RecognizeEntities:output_type -> linguaflow.llm.v1.RecognizeEntitiesResponse
	13, // 14: linguaflow.llm.v1.LLMService.Embed:output_type -> linguaflow.llm.v1.EmbedResponse
	12, // [12:15] is the sub-list for method output_type
	9,  // [9:12] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_proto_llm_proto_init() }
func file_proto_llm_proto_init() {
	if File_proto_llm_proto != nil {
		return
	}
	file_proto_llm_proto_msgTypes[3].OneofWrappers = []any{
		(*CompleteChunk_Text)(nil),
		(*CompleteChunk_Reasoning)(nil),
		(*CompleteChunk_Usage)(nil),
		(*CompleteChunk_Error)(nil),
		(*CompleteChunk_Skipped)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_llm_proto_rawDesc), len(file_proto_llm_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_llm_proto_goTypes,
		DependencyIndexes: file_proto_llm_proto_depIdxs,
		MessageInfos:      file_proto_llm_proto_msgTypes,
	}.Build()
	File_proto_llm_proto = out.File
	file_proto_llm_proto_goTypes = nil
	file_proto_llm_proto_depIdxs = nil
}
