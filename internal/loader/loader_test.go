package loader_test

import (
	"testing"

	"github.com/savannahghi/mentorship-xls-form/internal/loader"
	"github.com/savannahghi/mentorship-xls-form/internal/loader/excelloader"
	"github.com/savannahghi/mentorship-xls-form/internal/loader/jsonloader"
)

// Compile-time assertions that the concrete loaders satisfy the
// interfaces the compile pipeline depends on.
var (
	_ loader.ChecklistLoader = excelloader.Loader{}
	_ loader.FacilityLoader  = jsonloader.Loader{}
)

func TestLoaderInterfacesAreSatisfied(t *testing.T) {
	// The var block above fails to compile if either concrete loader
	// drifts from its interface; this test exists so `go test` exercises
	// the package and the assertions are not silently skipped.
}
