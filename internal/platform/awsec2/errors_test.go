package awsec2

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "test error"}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "vpc not found", err: apiError("InvalidVpcID.NotFound"), want: true},
		{name: "subnet not found", err: apiError("InvalidSubnetID.NotFound"), want: true},
		{name: "igw not found", err: apiError("InvalidInternetGatewayID.NotFound"), want: true},
		{name: "route table not found", err: apiError("InvalidRouteTableID.NotFound"), want: true},
		{name: "acl not found", err: apiError("InvalidNetworkAclID.NotFound"), want: true},
		{name: "group not found", err: apiError("InvalidGroup.NotFound"), want: true},
		{name: "dependency violation", err: apiError("DependencyViolation"), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "wrapped api error", err: fmt.Errorf("delete subnet: %w", apiError("InvalidSubnetID.NotFound")), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestIsDependencyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "dependency violation", err: apiError("DependencyViolation"), want: true},
		{name: "resource in use", err: apiError("ResourceInUse"), want: true},
		{name: "not found", err: apiError("InvalidVpcID.NotFound"), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "wrapped", err: fmt.Errorf("delete sg: %w", apiError("DependencyViolation")), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDependencyViolation(tt.err))
		})
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "request limit", err: apiError("RequestLimitExceeded"), want: true},
		{name: "throttling", err: apiError("Throttling"), want: true},
		{name: "throttling exception", err: apiError("ThrottlingException"), want: true},
		{name: "unrelated", err: apiError("UnauthorizedOperation"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRateLimited(tt.err))
		})
	}
}
