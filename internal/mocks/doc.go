// Package mocks provides testify/mock implementations of the store interfaces
// for tests that assert on call order and arguments.
//
//	users := mocks.NewUserRegistrar(t)
//	users.On("FindIDByEmail", mock.Anything, "registered@thunderdome.dev").
//	    Return(uuid.Nil, store.ErrUserNotFound)
//
// Expectations are asserted automatically when the test ends.
package mocks
