package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	TransactionRepoName RepositoryName = "transaction"
	PromotionRepoName   RepositoryName = "promotion"
	EventRepoName       RepositoryName = "event"
)

// BatchExecQueryRow колбэк, вызываемый для каждой строки батч запроса.
type BatchExecQueryRow func(i int, err error)
