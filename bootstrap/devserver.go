package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/clock"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/devapi"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/hasher"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/idgen"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/memory"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/config"
)

// DevServer builds the seeded development API for cfg.DevServer.
// publicURL prefixes uploaded file URLs and may be empty.
func DevServer(cfg config.DevServerConfig, publicURL string, logger zerolog.Logger) (http.Handler, error) {
	store := memory.NewContent(idgen.UUID{}, clock.System{}, hasher.NewBcrypt(0))
	if err := devapi.Seed(store); err != nil {
		return nil, fmt.Errorf("seed dev store: %w", err)
	}

	h := devapi.New(devapi.Deps{
		Store:     store,
		Logger:    logger.With().Str("component", "devapi").Logger(),
		PublicURL: publicURL,
		Latency:   cfg.Latency,
	})
	return h.Router(), nil
}
