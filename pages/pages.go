package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hostel/controllers"
	"hostel/models"
	"hostel/navigation"
)

func (a *App) signInPage(ctx context.Context) navigation.Route {
	auth := controllers.NewAuthController(a.api, a.sessions, a.router, a.log)

	for {
		a.console.Println("")
		a.console.Println("== Sign In ==  (signup / forgot / quit)")
		username := a.console.Prompt("Username")
		if a.inputEnded() {
			return ""
		}
		switch username {
		case "signup":
			return navigation.RouteSignUp
		case "forgot":
			return navigation.RouteForgotPassword
		case "quit":
			a.quit = true
			return ""
		case "":
			continue
		}
		password := a.console.Prompt("Password")

		auth.Login(ctx, username, password, a.console.Notify)
		if route, ok := a.takeRoute(); ok {
			return route
		}
		if auth.Err() != "" {
			a.console.Println("Error: " + auth.Err())
		}
	}
}

func (a *App) signUpPage(ctx context.Context) navigation.Route {
	auth := controllers.NewAuthController(a.api, a.sessions, a.router, a.log)

	a.console.Println("")
	a.console.Println("== Sign Up ==  (empty username goes back)")
	draft := models.RegisterDraft{}
	draft.Username = a.console.Prompt("Username")
	if draft.Username == "" {
		return navigation.RouteSignIn
	}
	draft.Password = a.console.Prompt("Password")
	draft.Email = a.console.Prompt("Email")
	draft.FirstName = a.console.Prompt("First name")
	draft.LastName = a.console.Prompt("Last name")
	draft.PhoneNumber = a.console.Prompt("Phone number")

	auth.Register(ctx, draft, a.console.Notify)
	if route, ok := a.takeRoute(); ok {
		return route
	}
	if auth.Err() != "" {
		a.console.Println("Error: " + auth.Err())
	}
	return navigation.RouteSignUp
}

func (a *App) forgotPasswordPage(ctx context.Context) navigation.Route {
	reset := controllers.NewPasswordResetController(a.api, a.router, a.log)

	for {
		if a.inputEnded() {
			return ""
		}
		switch reset.Step() {
		case controllers.StepRequestEmail:
			a.console.Println("")
			a.console.Println("== Reset Password ==  (empty email goes back)")
			email := a.console.Prompt("Email address")
			if email == "" {
				return navigation.RouteSignIn
			}
			reset.RequestCode(ctx, email, a.console.Notify)

		case controllers.StepVerifyCode:
			a.console.Printf("A 6-digit code has been sent to %s\n", reset.Email())
			code := a.console.Prompt("Reset code ('change' to re-enter email)")
			if code == "change" {
				reset.ChangeEmail()
				continue
			}
			reset.VerifyCode(ctx, code, a.console.Notify)

		case controllers.StepSetPassword:
			newPassword := a.console.Prompt("New password")
			confirm := a.console.Prompt("Confirm password")
			reset.ResetPassword(ctx, newPassword, confirm, a.console.Notify)
			if route, ok := a.takeRoute(); ok {
				return route
			}
		}
	}
}

func (a *App) dashboardPage(ctx context.Context) navigation.Route {
	dashboard := controllers.NewDashboardController(a.api, a.sessions, a.router, a.log)
	dashboard.Load(ctx, a.console.Notify)
	if route, ok := a.takeRoute(); ok {
		return route
	}

	summary := dashboard.Summary()
	a.console.Println("")
	a.console.Println("== Dashboard ==")
	if user, ok := a.sessions.Current(); ok {
		a.console.Printf("Signed in as %s (%s)\n", user.Username, user.Role)
	}
	a.console.Printf("Assets: %d total, %d good, %d damaged\n",
		summary.TotalAssets, summary.GoodAssets, summary.DamagedAssets)
	a.console.Printf("Rooms: %d   Users: %d\n", summary.TotalRooms, summary.TotalUsers)

	for {
		cmd := a.console.Prompt("assets / rooms / damage / users / profile / logout / quit")
		if a.inputEnded() {
			return ""
		}
		switch cmd {
		case "assets":
			return navigation.RouteAssets
		case "rooms":
			return navigation.RouteRooms
		case "damage":
			return navigation.RouteDamageTracking
		case "users":
			return navigation.RouteUserManagement
		case "profile":
			return navigation.RouteProfile
		case "logout":
			auth := controllers.NewAuthController(a.api, a.sessions, a.router, a.log)
			auth.Logout(ctx, a.console.Notify)
			if route, ok := a.takeRoute(); ok {
				return route
			}
			return navigation.RouteSignIn
		case "quit":
			a.quit = true
			return ""
		}
	}
}

func (a *App) assetsPage(ctx context.Context) navigation.Route {
	assets := controllers.NewAssetsController(a.api.Assets(), a.api, a.router, a.log)
	assets.FetchList(ctx, a.console.Notify)
	if route, ok := a.takeRoute(); ok {
		return route
	}

	for {
		a.console.Println("")
		a.console.Println("== Assets ==")
		for _, asset := range assets.Items() {
			a.console.Printf("#%d  %-20s %-10s qty=%d damaged=%d %s\n",
				asset.ID, asset.Name, asset.AssetType, asset.TotalQuantity, asset.DamagedQuantity, asset.Condition)
		}

		cmd, id := splitCommand(a.console.Prompt("new / edit <id> / delete <id> / damaged <id> / back / quit"))
		if a.inputEnded() {
			return ""
		}
		switch cmd {
		case "new":
			assets.OpenForm()
			a.fillAssetForm(assets)
			assets.Submit(ctx, a.console.Notify)
		case "edit":
			if asset, ok := findAsset(assets.Items(), id); ok {
				assets.Edit(asset)
				a.fillAssetForm(assets)
				assets.Submit(ctx, a.console.Notify)
			}
		case "delete":
			assets.Delete(ctx, id, a.console.Confirm, a.console.Notify)
		case "damaged":
			assets.MarkDamaged(ctx, id, a.console.Notify)
		case "back":
			return navigation.RouteDashboard
		case "quit":
			a.quit = true
			return ""
		}
		if route, ok := a.takeRoute(); ok {
			return route
		}
	}
}

func (a *App) fillAssetForm(assets *controllers.AssetsController) {
	form := assets.Form()
	name := a.console.Prompt(fmt.Sprintf("Name [%s]", form.Name))
	assetType := a.console.Prompt(fmt.Sprintf("Type (Bed/Table/Chair/Cupboard/Fan/Light/Other) [%s]", form.AssetType))
	quantity := a.console.PromptInt("Total quantity", form.TotalQuantity)
	condition := a.console.Prompt(fmt.Sprintf("Condition (Good/Damaged) [%s]", form.Condition))

	assets.UpdateForm(func(draft *models.AssetDraft) {
		if name != "" {
			draft.Name = name
		}
		if assetType != "" {
			draft.AssetType = models.AssetType(assetType)
		}
		draft.TotalQuantity = quantity
		if condition != "" {
			draft.Condition = models.Condition(condition)
		}
	})
}

func (a *App) roomsPage(ctx context.Context) navigation.Route {
	rooms := controllers.NewRoomsController(a.api.Rooms(), a.router, a.log)
	rooms.FetchList(ctx, a.console.Notify)
	if route, ok := a.takeRoute(); ok {
		return route
	}

	for {
		a.console.Println("")
		a.console.Println("== Rooms ==")
		for _, room := range rooms.Items() {
			floor := "-"
			if room.Floor != nil {
				floor = strconv.Itoa(*room.Floor)
			}
			a.console.Printf("#%d  room %-8s %-16s floor=%s capacity=%d assets=%d\n",
				room.ID, room.RoomNumber, room.HostelName, floor, room.Capacity, room.AssetCount)
		}

		cmd, id := splitCommand(a.console.Prompt("new / edit <id> / delete <id> / back / quit"))
		if a.inputEnded() {
			return ""
		}
		switch cmd {
		case "new":
			rooms.OpenForm()
			a.fillRoomForm(rooms)
			rooms.Submit(ctx, a.console.Notify)
		case "edit":
			if room, ok := findRoom(rooms.Items(), id); ok {
				rooms.Edit(room)
				a.fillRoomForm(rooms)
				rooms.Submit(ctx, a.console.Notify)
			}
		case "delete":
			rooms.Delete(ctx, id, a.console.Confirm, a.console.Notify)
		case "back":
			return navigation.RouteDashboard
		case "quit":
			a.quit = true
			return ""
		}
		if route, ok := a.takeRoute(); ok {
			return route
		}
	}
}

func (a *App) fillRoomForm(rooms *controllers.RoomsController) {
	form := rooms.Form()
	number := a.console.Prompt(fmt.Sprintf("Room number [%s]", form.RoomNumber))
	hostel := a.console.Prompt(fmt.Sprintf("Hostel name [%s]", form.HostelName))
	floorRaw := a.console.Prompt("Floor (blank for none)")
	capacity := a.console.PromptInt("Capacity", form.Capacity)

	rooms.UpdateForm(func(draft *models.RoomDraft) {
		if number != "" {
			draft.RoomNumber = number
		}
		if hostel != "" {
			draft.HostelName = hostel
		}
		if floorRaw != "" {
			if floor, err := strconv.Atoi(floorRaw); err == nil {
				draft.Floor = &floor
			}
		}
		draft.Capacity = capacity
	})
}

func (a *App) damageTrackingPage(ctx context.Context) navigation.Route {
	damage := controllers.NewDamageController(a.api, a.router, a.log)
	damage.Load(ctx, a.console.Notify)
	if route, ok := a.takeRoute(); ok {
		return route
	}

	for {
		a.console.Println("")
		a.console.Println("== Damage Tracking ==")
		a.console.Println("Rooms:")
		for _, room := range damage.Rooms() {
			a.console.Printf("  #%d room %s (%s)\n", room.ID, room.RoomNumber, room.HostelName)
		}
		a.console.Println("Reports:")
		for _, report := range damage.Reports() {
			a.console.Printf("  #%d room %-8s %-10s [%s] %s\n",
				report.ID, report.RoomNumber, report.AssetType, report.Status, report.Description)
		}

		cmd, id := splitCommand(a.console.Prompt("new / status <id> / delete <id> / back / quit"))
		if a.inputEnded() {
			return ""
		}
		switch cmd {
		case "new":
			damage.SetSelectedRoom(a.console.PromptInt("Room id", damage.SelectedRoom()))
			if assetType := a.console.Prompt(fmt.Sprintf("Asset type [%s]", damage.AssetType())); assetType != "" {
				damage.SetAssetType(models.AssetType(assetType))
			}
			damage.SetDescription(a.console.Prompt("Description"))
			damage.Submit(ctx, a.console.Notify)
		case "status":
			status := a.console.Prompt("New status (Not Fixed/Fixed/Replaced)")
			damage.StatusChange(ctx, id, models.DamageStatus(status), a.console.Notify)
		case "delete":
			damage.Delete(ctx, id, a.console.Confirm, a.console.Notify)
		case "back":
			return navigation.RouteDashboard
		case "quit":
			a.quit = true
			return ""
		}
		if route, ok := a.takeRoute(); ok {
			return route
		}
	}
}

func (a *App) userManagementPage(ctx context.Context) navigation.Route {
	users := controllers.NewUserAdminController(a.api, a.router, a.log)
	users.Load(ctx, a.console.Notify)
	if route, ok := a.takeRoute(); ok {
		return route
	}

	for {
		a.console.Println("")
		a.console.Println("== User Management ==")
		for _, user := range users.Users() {
			a.console.Printf("#%d  %-16s %-24s %-16s %s\n",
				user.ID, user.Username, user.Email, user.PhoneNumber, user.Role)
		}

		cmd, id := splitCommand(a.console.Prompt("role <id> / delete <id> / password <id> / back / quit"))
		if a.inputEnded() {
			return ""
		}
		switch cmd {
		case "role":
			role := a.console.Prompt("New role (Pending/Warden/Sub-Warden/Inventory Staff)")
			users.ChangeRole(ctx, id, models.Role(role), a.console.Notify)
		case "delete":
			users.DeleteUser(ctx, id, a.console.Confirm, a.console.Notify)
		case "password":
			newPassword := a.console.Prompt("New password")
			users.ResetPassword(ctx, id, newPassword, a.console.Notify)
		case "back":
			return navigation.RouteDashboard
		case "quit":
			a.quit = true
			return ""
		}
		if route, ok := a.takeRoute(); ok {
			return route
		}
	}
}

func (a *App) profilePage(ctx context.Context) navigation.Route {
	profile := controllers.NewProfileController(a.api, a.sessions, a.router, a.log)
	profile.Load(ctx, a.console.Notify)
	if route, ok := a.takeRoute(); ok {
		return route
	}

	for {
		user := profile.User()
		a.console.Println("")
		a.console.Println("== Profile ==")
		a.console.Printf("Username: %s\nName: %s %s\nEmail: %s\nPhone: %s\nRole: %s\n",
			user.Username, user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.Role)

		cmd := a.console.Prompt("edit / back / quit")
		if a.inputEnded() {
			return ""
		}
		switch cmd {
		case "edit":
			form := profile.Form()
			email := a.console.Prompt(fmt.Sprintf("Email [%s]", form.Email))
			first := a.console.Prompt(fmt.Sprintf("First name [%s]", form.FirstName))
			last := a.console.Prompt(fmt.Sprintf("Last name [%s]", form.LastName))
			phone := a.console.Prompt(fmt.Sprintf("Phone [%s]", form.PhoneNumber))
			profile.UpdateForm(func(draft *models.ProfileDraft) {
				if email != "" {
					draft.Email = email
				}
				if first != "" {
					draft.FirstName = first
				}
				if last != "" {
					draft.LastName = last
				}
				if phone != "" {
					draft.PhoneNumber = phone
				}
			})
			profile.Save(ctx, a.console.Notify)
		case "back":
			return navigation.RouteDashboard
		case "quit":
			a.quit = true
			return ""
		}
		if route, ok := a.takeRoute(); ok {
			return route
		}
	}
}

// splitCommand parses "edit 3" into its verb and numeric argument.
func splitCommand(input string) (string, int) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", 0
	}
	id := 0
	if len(parts) > 1 {
		id, _ = strconv.Atoi(parts[1])
	}
	return parts[0], id
}

func findAsset(items []models.Asset, id int) (models.Asset, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Asset{}, false
}

func findRoom(items []models.Room, id int) (models.Room, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Room{}, false
}
