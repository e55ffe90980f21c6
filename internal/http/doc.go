// Package http provides the optional HTTP adapters for the site builder.
//
// Routes mount under /api:
//   - Redemption: GET /redeem?code=, POST /redeem
//   - Sites: POST /sites, GET /sites, GET /sites/{slug},
//     POST /sites/{id}/content, POST /sites/{id}/publish
//   - Guests: POST /rsvp, GET /sites/{id}/guests
//
// Host applications can register handlers on their own mux/router as needed.
package http
