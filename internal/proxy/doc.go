// Package proxy implements the roverwatch proxy daemon.
//
// The daemon exists to keep the upstream api_key off client machines: the
// dashboard talks to /rovers and /rovers/{name}?max_date=… here, and the
// proxy forwards to the upstream rover photo API with the key attached,
// returning upstream JSON verbatim. There is no business logic; any
// transport failure collapses to a generic 500 so credentials and upstream
// details never leak into client-visible errors.
//
// Configuration comes from an optional YAML file overlaid with API_* env
// vars (API_DOMAIN, API_KEY, API_PORT, API_ASSETS_DIR); only the key has no
// default. The server also serves static assets and a catch-all landing
// page when an assets directory is configured.
package proxy
