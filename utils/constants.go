package utils

import "time"

// AuthSessionTTL bounds how long a phone-verification flow may take from
// code request to completed registration.
const AuthSessionTTL = 10 * time.Minute
