package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/actext/console/internal/marketapi"
	"github.com/actext/console/internal/services/console/routepath"
	"github.com/actext/console/internal/services/console/templates"
)

var allStatuses = []marketapi.ServiceRequestStatus{
	marketapi.StatusPending,
	marketapi.StatusInProgress,
	marketapi.StatusCompleted,
	marketapi.StatusCancelled,
}

var tabOrder = []struct {
	Tab   Tab
	Label string
}{
	{TabInquiries, "Buyer Inquiries"},
	{TabServiceRequests, "Service Requests"},
	{TabUsers, "Users"},
	{TabListings, "AC Listings"},
}

// dashboardPage renders the admin dashboard with all four panels in a
// single response. The tab bar toggles panel visibility with CSS-only
// radio inputs, so switching tabs issues no request.
func dashboardPage(snap Snapshot, active Tab) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<section class="dashboard"><div class="dashboard-actions"><h1>Admin Dashboard</h1>`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<a class="button" href="%s">Refresh</a><a class="button button-primary" href="%s">Add New AC</a></div>`,
			templ.EscapeString(routepath.Admin), templ.EscapeString(routepath.NewListing)); err != nil {
			return err
		}
		if snap.Partial {
			if err := templates.Banner("error", "Failed to fetch data").Render(ctx, w); err != nil {
				return err
			}
		}
		for _, entry := range tabOrder {
			checked := ""
			if entry.Tab == active {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w,
				`<input class="tab-state" type="radio" name="dashboard-tab" id="tab-%[1]s"%[2]s><label class="tab" for="tab-%[1]s">%[3]s</label>`,
				templ.EscapeString(string(entry.Tab)), checked, templ.EscapeString(entry.Label)); err != nil {
				return err
			}
		}
		if err := renderPanel(ctx, w, TabInquiries, inquiryTable(snap.Inquiries)); err != nil {
			return err
		}
		if err := renderPanel(ctx, w, TabServiceRequests, serviceRequestTable(snap.ServiceRequests)); err != nil {
			return err
		}
		if err := renderPanel(ctx, w, TabUsers, userTable(snap.Users)); err != nil {
			return err
		}
		if err := renderPanel(ctx, w, TabListings, listingTable(snap.Listings)); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, `</section>`)
		return err
	})
}

func renderPanel(ctx context.Context, w io.Writer, tab Tab, body templ.Component) error {
	if _, err := fmt.Fprintf(w, `<div class="tab-panel" id="panel-%s">`, templ.EscapeString(string(tab))); err != nil {
		return err
	}
	if err := body.Render(ctx, w); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, `</div>`)
	return err
}

func inquiryTable(rows []marketapi.BuyerInquiry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(rows) == 0 {
			return writeEmptyState(w, "No buyer inquiries yet.")
		}
		if _, err := fmt.Fprint(w, `<table class="data-table"><thead><tr><th>Name</th><th>Email</th><th>Phone</th><th>Message</th><th>Status</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.FullName), templ.EscapeString(row.Email),
				templ.EscapeString(row.Phone), templ.EscapeString(row.Message),
				templ.EscapeString(row.Status)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</tbody></table>`)
		return err
	})
}

func serviceRequestTable(rows []marketapi.ServiceRequest) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(rows) == 0 {
			return writeEmptyState(w, "No service requests yet.")
		}
		if _, err := fmt.Fprint(w, `<table class="data-table"><thead><tr><th>Name</th><th>Email</th><th>Phone</th><th>Service</th><th>Address</th><th>Status</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
				templ.EscapeString(row.FullName), templ.EscapeString(row.Email),
				templ.EscapeString(row.Phone), templ.EscapeString(row.ServiceType),
				templ.EscapeString(row.Address)); err != nil {
				return err
			}
			if err := writeStatusForm(w, row); err != nil {
				return err
			}
			if _, err := fmt.Fprint(w, `</td></tr>`); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</tbody></table>`)
		return err
	})
}

// writeStatusForm renders the per-row status control. Submitting posts
// the mutation and the follow-up page reflects the server's rows.
func writeStatusForm(w io.Writer, row marketapi.ServiceRequest) error {
	if _, err := fmt.Fprintf(w,
		`<form method="post" action="%s"><select name="status">`,
		templ.EscapeString(routepath.ServiceRequestStatusPath(row.ID))); err != nil {
		return err
	}
	for _, status := range allStatuses {
		selected := ""
		if status == row.Status {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%[1]s"%[2]s>%[1]s</option>`,
			templ.EscapeString(string(status)), selected); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, `</select><button type="submit">Update</button></form>`)
	return err
}

func userTable(rows []marketapi.User) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(rows) == 0 {
			return writeEmptyState(w, "No registered users yet.")
		}
		if _, err := fmt.Fprint(w, `<table class="data-table"><thead><tr><th>Name</th><th>Email</th><th>Role</th><th>Actions</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			role := "user"
			if row.IsAdmin {
				role = "admin"
			}
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td><button type="button" disabled>View Details</button></td></tr>`,
				templ.EscapeString(row.Name), templ.EscapeString(row.Email), role); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</tbody></table>`)
		return err
	})
}

func listingTable(rows []marketapi.Listing) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(rows) == 0 {
			return writeEmptyState(w, "No AC listings yet.")
		}
		if _, err := fmt.Fprint(w, `<table class="data-table"><thead><tr><th>Title</th><th>Brand</th><th>Type</th><th>Price</th><th>Status</th><th>Actions</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>&#8377;%d</td><td>%s</td><td><button type="button" disabled>Edit</button> <button type="button" disabled>Delete</button></td></tr>`,
				templ.EscapeString(row.Title), templ.EscapeString(row.Brand),
				templ.EscapeString(row.ACType), row.Price, templ.EscapeString(row.Status)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</tbody></table>`)
		return err
	})
}

func writeEmptyState(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, `<p class="empty-state">%s</p>`, templ.EscapeString(message))
	return err
}
