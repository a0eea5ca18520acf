// Package gitdocs is a document store whose records are JSON files inside
// a git working copy. A Store owns a local checkout of a remote repository
// and exposes per-document operations on nested JSON paths, a boolean
// query algebra for filtering documents, and git-backed synchronization.
//
//	store, _ := gitdocs.New("notes", "https://example.com/notes.git", "/var/lib/gitdocs/notes",
//	    gitdocs.WithTokenAuth(os.Getenv("GIT_TOKEN")),
//	    gitdocs.WithAuthor("bot", "bot@example.com"),
//	)
//	_ = store.Initialize(ctx)
//	_ = store.SetField("users/alice.json", "address.zip", "999999")
//	docs, _ := store.FindMany(gitdocs.Eq(
//	    gitdocs.Field("role", gitdocs.Str("admin")),
//	    gitdocs.Lit(gitdocs.Str("admin")),
//	))
//	_ = store.Sync(ctx, "update alice")
//
// All operations are synchronous; lifecycle calls are serialized per store,
// document read-modify-write sequences are last-write-wins.
package gitdocs
