package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ParameterStore reads a single secret value by name
type ParameterStore interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewParameterStore builds an SSM client from the default AWS credential chain
func NewParameterStore(ctx context.Context) (ParameterStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// ResolveAIKey fills AnthropicAPIKey from SSM Parameter Store when it is not set
// directly and a parameter name is configured. A failed lookup leaves AI disabled
// rather than failing startup.
func ResolveAIKey(ctx context.Context, s Settings, store ParameterStore) Settings {
	if s.AnthropicAPIKey != "" || s.AnthropicKeyParameter == "" || store == nil {
		return s
	}

	out, err := store.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(s.AnthropicKeyParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		log.Warn().Err(err).Str("parameter", s.AnthropicKeyParameter).Msg("Failed to read AI credential from SSM, AI features disabled")
		return s
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		log.Warn().Str("parameter", s.AnthropicKeyParameter).Msg("SSM parameter has no value, AI features disabled")
		return s
	}

	s.AnthropicAPIKey = *out.Parameter.Value
	return s
}
