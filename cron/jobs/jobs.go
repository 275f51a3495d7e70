package jobs

import (
	"log"
	"sync"
	"time"

	"vitrine.GO/service/cart"
	"vitrine.GO/service/catalog"
)

var (
	mu          sync.Mutex
	catalogSvc  *catalog.Service
	catalogPath string
	sessions    *cart.SessionStore
	maxIdle     = 2 * time.Hour
)

// Wire hands the scheduled jobs their service handles. Called once from
// main/cmd before the scheduler starts; jobs log and skip when unwired.
func Wire(svc *catalog.Service, path string, store *cart.SessionStore) {
	mu.Lock()
	defer mu.Unlock()
	catalogSvc = svc
	catalogPath = path
	sessions = store
}

// CatalogRefreshJob reloads the catalog snapshot from disk and drops the
// memoized pages (forced refresh of the otherwise static catalog).
func CatalogRefreshJob(args ...string) {
	mu.Lock()
	svc, path := catalogSvc, catalogPath
	mu.Unlock()
	if svc == nil {
		log.Println("catalogrefreshjob: not wired, skipping")
		return
	}
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}
	if err := svc.LoadFile(path); err != nil {
		log.Printf("catalogrefreshjob: reload failed: %v", err)
		return
	}
	log.Printf("catalogrefreshjob: reloaded %d products (%d dropped)", svc.Len(), svc.Dropped())
}

// CartPruneJob tears down cart sessions idle beyond the cutoff.
func CartPruneJob(args ...string) {
	mu.Lock()
	store := sessions
	mu.Unlock()
	if store == nil {
		log.Println("cartprunejob: not wired, skipping")
		return
	}
	pruned := store.PruneIdle(maxIdle)
	if pruned > 0 {
		log.Printf("cartprunejob: pruned %d idle sessions", pruned)
	}
}
