package uid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TableDriven(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "default is uuidv7", opts: Options{}},
		{name: "uuidv7", opts: Options{Strategy: StrategyUUIDv7}},
		{name: "snowflake", opts: Options{Strategy: StrategySnowflake, NodeID: 7}},
		{name: "snowflake node out of range", opts: Options{Strategy: StrategySnowflake, NodeID: 4096}, wantErr: true},
		{name: "unknown strategy", opts: Options{Strategy: "ulid"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			generator, err := New(tc.opts)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			first, err := generator.Generate(context.Background())
			require.NoError(t, err)
			second, err := generator.Generate(context.Background())
			require.NoError(t, err)
			assert.NotEmpty(t, first)
			assert.NotEqual(t, first, second)
		})
	}
}

func TestUUIDv7_IsVersion7(t *testing.T) {
	id, err := NewUUIDv7().Generate(context.Background())
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestParseStrategy(t *testing.T) {
	assert.Equal(t, StrategySnowflake, ParseStrategy(" Snowflake "))
	assert.Equal(t, StrategyUUIDv7, ParseStrategy("UUIDv7"))
	assert.Equal(t, Strategy(""), ParseStrategy(""))
}
