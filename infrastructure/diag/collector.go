package diag

import (
	"sync"

	"github.com/typegate-dev/typegate/domain/entities"
)

// Report is one recorded diagnostics entry.
type Report struct {
	Message string
	Decl    *entities.Declaration
}

// Collector records reports in order. Hosts that aggregate diagnostics use
// it directly; it is also convenient in tests. Safe for hosts that walk
// units concurrently.
type Collector struct {
	mu      sync.Mutex
	reports []Report
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report records one violation.
func (c *Collector) Report(message string, decl *entities.Declaration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append(c.reports, Report{Message: message, Decl: decl})
}

// Reports returns a copy of the recorded reports in report order.
func (c *Collector) Reports() []Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Report(nil), c.reports...)
}
