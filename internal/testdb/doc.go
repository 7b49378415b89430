//go:build integration

// Package testdb provides helpers for tests that talk to a real PostgreSQL
// database.
//
// Each test runs inside a transaction that is rolled back when the test
// completes, so tests can share one database and run in parallel without
// seeing each other's rows.
//
//	func TestCouponStore(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t) // skips when no database is configured
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresCouponStore(tx, nil)
//	        // ...
//	    })
//	}
//
// # Environment Variables
//
// COUPONAPI_TEST_DB_URL is checked first, then DATABASE_URL. When neither is
// set the tests are skipped locally and fail under CI.
package testdb
