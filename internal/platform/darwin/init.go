//go:build darwin && cgo

package darwin

import "github.com/deskview/deskview/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Desktop:  NewDesktop(),
			Inputter: NewInputter(),
			Screen:   NewScreen(),
		}, nil
	}
	platform.RequestPermissionsFunc = requestAccessibilityPermission
}
