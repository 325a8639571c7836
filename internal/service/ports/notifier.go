package ports

import "context"

type AdminNotifier interface {
	NotifyAdminLogin(ctx context.Context, email string)
	NotifyPasswordChanged(ctx context.Context, email string)
}
