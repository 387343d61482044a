package dig_container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/ecoquest/apps/api/echo"
	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/session"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "test")

	c := New()
	err := c.Invoke(func(conf *core.Config, sessions *session.Registry, janitor *session.Janitor, server *echoapi.Server) {
		assert.True(t, conf.TestMode)
		assert.Equal(t, "TEST", conf.Env)
		assert.Equal(t, 0, sessions.Len())
		assert.NotNil(t, janitor)
		assert.NoError(t, server.Close())
	})
	require.NoError(t, err)
}
