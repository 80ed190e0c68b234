package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// CreateWithAccountAndProfile persists the employee, its account, the
	// empty profile placeholder and the audit entry in one transaction.
	CreateWithAccountAndProfile(employee *models.Employee, account *models.Account, profile *models.ProfileImage, audit *models.AuditTrail) error

	// FindByID finds an employee by ID
	FindByID(id uint64) (*models.Employee, error)

	// FindByIDs loads all employees matching the given IDs; missing IDs are
	// simply absent from the result.
	FindByIDs(ids []uint64) ([]models.Employee, error)

	// FindAllExceptFirstName lists employees whose first name differs from
	// the given value. Used to hide the built-in admin employee.
	FindAllExceptFirstName(firstName string) ([]models.Employee, error)

	// ExistsByEmail reports whether an employee with the email exists
	ExistsByEmail(email string) (bool, error)

	// ExistsByID reports whether the employee exists
	ExistsByID(id uint64) (bool, error)

	// Update updates an employee
	Update(employee *models.Employee) error

	// DeleteCascade removes everything that references the employee, then
	// the employee and its account, in one transaction: documents, profile
	// image, project assignments, meeting invitations and finally the
	// employee row itself. The audit entry is written inside the same
	// transaction, after the detach steps and before the row delete.
	DeleteCascade(employee *models.Employee, audit *models.AuditTrail) error
}

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	FindByID(id uint64) (*models.Account, error)
	FindByUsername(username string) (*models.Account, error)
	ExistsByUsername(username string) (bool, error)
	FindAll() ([]models.Account, error)
	Update(account *models.Account) error
}

// AssociationRepository maintains the hand-managed link tables between
// employees and the structures that reference them. Lookups on a missing
// employee return empty results rather than errors, which keeps the deletion
// cascade safe to retry.
type AssociationRepository interface {
	// WithTx returns a copy of the repository bound to the given
	// transaction, so cascade steps can share one unit of work.
	WithTx(tx *gorm.DB) AssociationRepository

	DocumentsOf(employeeID uint64) ([]models.Document, error)
	RemoveDocuments(docs []models.Document) error

	// ProfileOf returns nil without error when the employee has no profile
	// image.
	ProfileOf(employeeID uint64) (*models.ProfileImage, error)
	RemoveProfile(profile *models.ProfileImage) error

	ProjectsContaining(employeeID uint64) ([]models.Project, error)
	// DetachEmployeeFromProject removes the assignment row only; the
	// project's configured team-size ceiling is never touched.
	DetachEmployeeFromProject(projectID, employeeID uint64) error

	MeetingsInviting(employeeID uint64) ([]models.Meeting, error)
	DetachEmployeeFromMeeting(meetingID, employeeID uint64) error
}

// DocumentRepository covers the upload/download lifecycle of employee
// documents and profile images.
type DocumentRepository interface {
	CreateDocument(doc *models.Document) error
	FindDocumentByID(id uint64) (*models.Document, error)
	ExistsDocumentByID(id uint64) (bool, error)
	DeleteDocument(id uint64) error

	// ReplaceProfile deletes any existing profile image for the employee
	// and inserts the new one in a single transaction.
	ReplaceProfile(profile *models.ProfileImage) error
	DeleteProfileByEmployeeID(employeeID uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64) (*models.Project, error)
	FindAll() ([]models.Project, error)
	FindByEmployeeID(employeeID uint64) ([]models.Project, error)
	ExistsByID(id uint64) (bool, error)
	Update(project *models.Project) error
	Delete(id uint64) error

	// ReplaceAssignments swaps the project's entire assignment set and
	// writes the audit entry in one transaction.
	ReplaceAssignments(project *models.Project, employees []models.Employee, audit *models.AuditTrail) error

	// RemoveAssignments detaches the given employees and writes the audit
	// entry in one transaction.
	RemoveAssignments(projectID uint64, employeeIDs []uint64, audit *models.AuditTrail) error
}

// TaskFilter holds the optional criteria for listing tasks within a project.
type TaskFilter struct {
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	Stage      *models.TaskStage
	AssignedTo *string
}

// TaskStatistics aggregates per-project task counts.
type TaskStatistics struct {
	TotalTasks      int64   `json:"totalTasks"`
	PendingTasks    int64   `json:"pendingTasks"`
	InProgressTasks int64   `json:"inProgressTasks"`
	CompletedTasks  int64   `json:"completedTasks"`
	OnHoldTasks     int64   `json:"onHoldTasks"`
	HighPriority    int64   `json:"highPriorityTasks"`
	MediumPriority  int64   `json:"mediumPriorityTasks"`
	LowPriority     int64   `json:"lowPriorityTasks"`
	Development     int64   `json:"developmentTasks"`
	Testing         int64   `json:"testingTasks"`
	Staging         int64   `json:"stagingTasks"`
	Production      int64   `json:"productionTasks"`
	AverageProgress float64 `json:"averageProgress"`
	OverdueTasks    int64   `json:"overdueTasks"`
	TasksDueSoon    int64   `json:"tasksDueSoon"`
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uint64) (*models.Task, error)
	FindAll() ([]models.Task, error)
	FindByProjectID(projectID uint64, filter TaskFilter) ([]models.Task, error)
	FindOverdue(projectID uint64, today time.Time) ([]models.Task, error)
	FindDueSoon(projectID uint64, from, to time.Time) ([]models.Task, error)
	Statistics(projectID uint64, today time.Time) (*TaskStatistics, error)
	ExistsByID(id uint64) (bool, error)
	Save(task *models.Task) error

	// SaveWithAudit persists the task mutation and the audit entry in one
	// transaction. Status/progress updates go through here.
	SaveWithAudit(task *models.Task, audit *models.AuditTrail) error

	// DeleteCascade removes the task's files, posts and nested comments,
	// then the task, plus the audit entry, in one transaction.
	DeleteCascade(taskID uint64, audit *models.AuditTrail) error

	CreateFile(file *models.TaskFile) error
	FindFileByID(id uint64) (*models.TaskFile, error)
	// FindFilesByTaskID lists the task's file metadata without loading the
	// blob contents.
	FindFilesByTaskID(taskID uint64) ([]models.TaskFile, error)
	ExistsFileByID(id uint64) (bool, error)
	DeleteFile(id uint64) error
}

// TaskFeedRepository defines the interface for task posts and comments
type TaskFeedRepository interface {
	PostsByTaskID(taskID uint64) ([]models.TaskPost, error)
	PostsByTaskIDAndAuthor(taskID uint64, author string) ([]models.TaskPost, error)
	PostsByAuthor(author string) ([]models.TaskPost, error)
	FindPostByID(id uint64) (*models.TaskPost, error)
	ExistsPostByID(id uint64) (bool, error)
	CreatePost(post *models.TaskPost) error
	UpdatePost(post *models.TaskPost) error

	// DeletePostCascade removes the post's comments, the post and writes the
	// audit entry in one transaction.
	DeletePostCascade(postID uint64, audit *models.AuditTrail) error

	CountPostsByTaskID(taskID uint64) (int64, error)
	CommentsByPostID(postID uint64) ([]models.TaskComment, error)
	FindCommentByID(id uint64) (*models.TaskComment, error)
	CreateComment(comment *models.TaskComment) error
	UpdateComment(comment *models.TaskComment) error
	DeleteComment(id uint64) error
	CountCommentsByPostID(postID uint64) (int64, error)
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	Create(meeting *models.Meeting) error
	FindByID(id uint64) (*models.Meeting, error)
	FindAll() ([]models.Meeting, error)
	FindUpcoming(from time.Time) ([]models.Meeting, error)
	FindByDate(date time.Time) ([]models.Meeting, error)
	FindByCreator(createdBy string) ([]models.Meeting, error)
	FindByStatus(status models.MeetingStatus) ([]models.Meeting, error)
	FindByEmployeeID(employeeID uint64) ([]models.Meeting, error)
	Update(meeting *models.Meeting) error

	// ReplaceInvitees swaps the meeting's invitee set. Passing an empty
	// slice clears the list.
	ReplaceInvitees(meeting *models.Meeting, invitees []models.Employee) error

	Delete(id uint64) error
}

// AuditRepository defines the interface for the append-only audit ledger.
// There are deliberately no update or delete operations.
type AuditRepository interface {
	Create(entry *models.AuditTrail) error
	FindAll() ([]models.AuditTrail, error)
	FindByActor(actor string) ([]models.AuditTrail, error)
}
