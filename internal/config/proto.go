package config

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto converts the configuration to a protobuf Struct keyed by the wire field names.
func (c ExperimentConfig) ToProto() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(c.ToMap())
	if err != nil {
		return nil, fmt.Errorf("failed to convert config to proto: %w", err)
	}
	return s, nil
}

// FromProto converts a protobuf Struct back into a configuration.
func FromProto(s *structpb.Struct) (ExperimentConfig, error) {
	if s == nil {
		return ExperimentConfig{}, ErrNilStruct
	}
	cfg, err := FromMap(s.AsMap())
	if err != nil {
		return ExperimentConfig{}, fmt.Errorf("failed to convert config from proto: %w", err)
	}
	return cfg, nil
}

// ToProtoJSON renders the protobuf Struct form using the canonical protojson mapping.
func (c ExperimentConfig) ToProtoJSON() ([]byte, error) {
	s, err := c.ToProto()
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
}
