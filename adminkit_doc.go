// The [adminkit] package is the client SDK for the training-site admin
// API: domains, courses, projects, study materials, testimonials, video
// testimonials, and trainer profiles.
//
// # Services
//
// [Client] exposes one service per entity. Every service maps one domain
// action to one HTTP call: [ProjectsService.All] lists every record
// including drafts for the administrative view, [ProjectsService.Active]
// lists published records with optional domain/course filters,
// [ProjectsService.Get] fetches one record, and Create/Update/Delete send
// multipart payloads built by [github.com/edusite/adminkit/pkg/forms].
//
// # Sessions
//
// Authentication is a bearer token obtained from [AuthService.Login] and
// persisted by [github.com/edusite/adminkit/pkg/session.Store]. The store
// is handed to the client at construction; every request picks the token
// up from it.
//
// # Request lifecycle
//
// Services return plain results and errors. The console drives them
// through [github.com/edusite/adminkit/pkg/fetch], which adds the
// loading/success/error state machine, cancellation, supersession,
// pagination, and parallel query groups.
package adminkit
