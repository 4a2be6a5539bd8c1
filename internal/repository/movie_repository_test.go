package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUpsertedTally(t *testing.T) {
	tests := []struct {
		name     string
		result   *mongo.BulkWriteResult
		expected int64
	}{
		{
			name:     "all fresh inserts",
			result:   &mongo.BulkWriteResult{UpsertedCount: 20},
			expected: 20,
		},
		{
			// A re-import of existing, changed documents matches and
			// modifies every one of them; each counts exactly once.
			name:     "re-import of changed documents",
			result:   &mongo.BulkWriteResult{MatchedCount: 20, ModifiedCount: 20},
			expected: 20,
		},
		{
			name:     "mixed batch",
			result:   &mongo.BulkWriteResult{UpsertedCount: 5, MatchedCount: 15, ModifiedCount: 7},
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, upsertedTally(tt.result))
		})
	}
}
