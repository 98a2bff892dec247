package repositories

type Repos struct {
	User    UserRepo
	Request RequestRepo
	Message MessageRepo
	Audit   AuditRepo
}

func New() *Repos {
	return &Repos{
		User:    &DBUserRepo{},
		Request: &DBRequestRepo{},
		Message: &DBMessageRepo{},
		Audit:   &DBAuditRepo{},
	}
}
