package streetview

// STREETVIEW_PUBLISH_SCOPE is the OAuth2 scope required to publish photos with the Street View Publish API.
const STREETVIEW_PUBLISH_SCOPE string = "https://www.googleapis.com/auth/streetviewpublish"

// DEFAULT_CREDENTIALS_PATH is the default path for OAuth2 client secrets ("installed application") material.
const DEFAULT_CREDENTIALS_PATH string = "credentials.json"

// DEFAULT_TOKEN_PATH is the default path where access and refresh tokens are cached between runs.
const DEFAULT_TOKEN_PATH string = "token.json"
