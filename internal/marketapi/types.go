package marketapi

// Resource names the REST collections exposed by the marketplace API.
type Resource string

const (
	ResourceServiceRequests Resource = "service-requests"
	ResourceBuyerInquiries  Resource = "buyer-inquiries"
	ResourceUsers           Resource = "users"
	ResourceListings        Resource = "ac-listings"
)

// ServiceRequestStatus enumerates the service request lifecycle states.
type ServiceRequestStatus string

const (
	StatusPending    ServiceRequestStatus = "pending"
	StatusInProgress ServiceRequestStatus = "in-progress"
	StatusCompleted  ServiceRequestStatus = "completed"
	StatusCancelled  ServiceRequestStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s ServiceRequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ServiceRequest is one installation/repair request row.
type ServiceRequest struct {
	ID          int64                `json:"id"`
	FullName    string               `json:"full_name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	ServiceType string               `json:"service_type"`
	Address     string               `json:"address"`
	Status      ServiceRequestStatus `json:"status"`
}

// BuyerInquiry is one buyer contact message row.
type BuyerInquiry struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Status   string `json:"status"`
}

// User is one registered account row.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Listing is one air-conditioner listing row.
type Listing struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Brand  string `json:"brand"`
	ACType string `json:"ac_type"`
	Price  int64  `json:"price"`
	Status string `json:"status"`
}
