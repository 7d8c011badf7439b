// Package taskapi is the HTTP client for the remote task store.
//
// The store exposes a small REST surface:
//
//	POST   /api/task       {"description": "..."}  -> 201 {"id": "...", "description": "..."}
//	GET    /api/tasks                              -> 200 [{"id": "...", "description": "..."}]
//	DELETE /api/task/{id}                          -> 200
//	DELETE /api/tasks                              -> 200
//
// Any other status is a failure. Every error returned by Client is a
// *task.Error so callers can branch on task.KindOf without parsing messages.
package taskapi
