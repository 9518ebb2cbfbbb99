package maps

import (
	"testing"
	"time"

	"github.com/aopkit/aopkit/test/assert"
)

func TestMap2Struct(t *testing.T) {
	type pool struct {
		Size           int
		Blocking       bool
		AcquireTimeout time.Duration
		EvictionCron   string
	}
	input := map[string]interface{}{
		"size":           8,
		"blocking":       true,
		"acquireTimeout": "5s",
		"evictionCron":   "@every 1m",
	}
	var out pool
	err := Map2Struct(input, &out)
	assert.Nil(t, err)
	assert.Equal(t, 8, out.Size)
	assert.True(t, out.Blocking)
	assert.Equal(t, 5*time.Second, out.AcquireTimeout)
	assert.Equal(t, "@every 1m", out.EvictionCron)
}

func TestMap2StructInvalidDuration(t *testing.T) {
	type cfg struct {
		Timeout time.Duration
	}
	var out cfg
	err := Map2Struct(map[string]interface{}{"timeout": "5invalid"}, &out)
	assert.NotNil(t, err)
}

func TestMap2StructNonPointer(t *testing.T) {
	var out struct{ Size int }
	err := Map2Struct(map[string]interface{}{"size": 1}, out)
	assert.NotNil(t, err)
}

func TestMap2StructNilInput(t *testing.T) {
	var out struct{ Size int }
	err := Map2Struct(nil, &out)
	assert.Nil(t, err)
	assert.Equal(t, 0, out.Size)
}
