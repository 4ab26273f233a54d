package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "category",
			objectType:  "list",
			identifier:  "all",
			expectedKey: "trivia:category:list:all",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "category",
			objectType:  "list",
			identifier:  "all",
			paramsKey:   []string{},
			expectedKey: "trivia:category:list:all",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "question",
			objectType:  "page",
			identifier:  "3",
			paramsKey:   []string{"cat1", "v2"},
			expectedKey: "trivia:question:page:3:cat1_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}
