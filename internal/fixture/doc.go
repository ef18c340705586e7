// Package fixture seeds and tears down the known test users an end-to-end
// suite logs in with.
//
// Seed registers a fixture through the store's registration capability and
// hands back the fixture merged with the generated ids. Teardown looks the
// fixture up by email and, when present, deletes it; it is safe to call when
// the user does not exist, so harnesses may run it both before and after a
// scenario. Neither operation retries: database errors are returned to the
// caller wrapped with the step that failed.
//
// Basic usage:
//
//	users := postgres.NewPostgresUserStore(db)
//	seeded, err := fixture.Seed(ctx, users, domain.RegisteredUserFixture())
//	if err != nil {
//	    t.Fatalf("seed registered user: %v", err)
//	}
//	defer fixture.Teardown(ctx, users, domain.RegisteredUserFixture())
package fixture
