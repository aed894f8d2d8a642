package v1_test

import (
	"net/http"
	"testing"

	"github.com/fundledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/accounts", "OPTIONS, GET, POST"},
		{"http://example.com/v1/accounts/tree", "OPTIONS, GET"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/projects", "OPTIONS, GET, POST"},
		{"http://example.com/v1/reporting-periods", "OPTIONS, GET, POST"},
		{"http://example.com/v1/fundings", "OPTIONS, GET, POST"},
		{"http://example.com/v1/allocations", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budgets", "OPTIONS, GET"},
		{"http://example.com/v1/reports/ledger", "OPTIONS, GET"},
		{"http://example.com/v1/reports/balance-sheet", "OPTIONS, GET"},
		{"http://example.com/v1/reports/income-statement", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
