package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudtidy/vpcsweep/internal/platform/awsec2"
)

func TestRegions_ListsDefaultVPCs(t *testing.T) {
	bootstrap := &awsec2.MockClient{
		ListRegionsFunc: func(_ context.Context) ([]string, error) {
			return []string{"us-east-1", "eu-north-1"}, nil
		},
		GetDefaultVPCFunc: func(_ context.Context) (*awsec2.DefaultVPC, error) {
			return &awsec2.DefaultVPC{ID: "vpc-a", Region: "us-east-1"}, nil
		},
	}
	lines := withFakes(t, map[string]awsec2.NetworkManager{
		"us-east-1":  bootstrap,
		"eu-north-1": &awsec2.MockClient{},
	})

	err := Regions(context.Background(), RegionsOptions{})

	require.NoError(t, err)
	require.Len(t, *lines, 2)
	assert.Contains(t, (*lines)[0], "us-east-1")
	assert.Contains(t, (*lines)[0], "vpc-a")
	assert.Contains(t, (*lines)[1], "eu-north-1")
	assert.Contains(t, (*lines)[1], "-")
}

func TestRegions_LookupErrorSetsExitError(t *testing.T) {
	bootstrap := &awsec2.MockClient{
		ListRegionsFunc: func(_ context.Context) ([]string, error) {
			return []string{"us-east-1"}, nil
		},
		GetDefaultVPCFunc: func(_ context.Context) (*awsec2.DefaultVPC, error) {
			return nil, errors.New("access denied")
		},
	}
	lines := withFakes(t, map[string]awsec2.NetworkManager{
		"us-east-1": bootstrap,
	})

	err := Regions(context.Background(), RegionsOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to inspect 1 region(s)")
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "access denied")
}
