package model

import "time"

type StaffJob string // role a person held on a movie

const (
	JobDirector StaffJob = "director"
	JobProducer StaffJob = "producer"
	JobWriter   StaffJob = "writer"
	JobActor    StaffJob = "actor"
	JobMusic    StaffJob = "music"
)

// ParseStaffJob validates a job token from client input.
func ParseStaffJob(s string) (StaffJob, bool) {
	switch StaffJob(s) {
	case JobDirector, JobProducer, JobWriter, JobActor, JobMusic:
		return StaffJob(s), true
	}
	return "", false
}

// StaffJobs lists the accepted job tokens, for error messages.
func StaffJobs() []string {
	return []string{
		string(JobActor),
		string(JobDirector),
		string(JobMusic),
		string(JobProducer),
		string(JobWriter),
	}
}

// Staff assigns a person to a movie in a given job. The same person can
// hold several jobs on one movie, but each job only once.
type Staff struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	MovieID  uint     `gorm:"not null;uniqueIndex:idx_movie_person_job" json:"movie_id"`
	PersonID uint     `gorm:"not null;uniqueIndex:idx_movie_person_job" json:"person_id"`
	Job      StaffJob `gorm:"type:varchar(20);not null;uniqueIndex:idx_movie_person_job" json:"job"`

	Movie  *Movie  `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}

// AssignStaffRequest assigns a person to a movie (admin only)
type AssignStaffRequest struct {
	PersonID uint   `json:"person_id" binding:"required"`
	Job      string `json:"job" binding:"required"`
}
