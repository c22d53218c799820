package contact

import "errors"

// ErrCaptchaFailed means the verifier rejected the token or scored it
// below the acceptance threshold. The score is never exposed to callers.
var ErrCaptchaFailed = errors.New("captcha verification failed")

// ErrDispatchFailed means the mail collaborator reported a failure.
var ErrDispatchFailed = errors.New("failed to dispatch email")
