package stats

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/omniscale/pbfserve/logging"
)

var log = logging.NewLogger("stats")

// StartHttpPProf serves the pprof handlers of http.DefaultServeMux on bind.
func StartHttpPProf(bind string) {
	go func() {
		log.Printf("serving pprof on %s", bind)
		log.Errorf("pprof server stopped: %v", http.ListenAndServe(bind, nil))
	}()
}
