package contract

import "context"

// IMailService is the outbound notifier. Implementations own the transport
// and the HTML templates; callers only hand over recipient, display name and
// the link to embed.
type IMailService interface {
	SendVerificationEmail(ctx context.Context, to, displayName, verificationURL string) error
	SendPasswordResetEmail(ctx context.Context, to, displayName, resetURL string) error
}
