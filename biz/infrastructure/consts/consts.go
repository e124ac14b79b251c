package consts

// DynamoDB 相关
const (
	HomeworkKeyPrefix = "HOMEWORK#"
	UserKeyPrefix     = "USER#"
	MetaKeyPrefix     = "META#"
	EntityHomework    = "HOMEWORK"
	EntityUser        = "USER"

	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrEntityType = "entityType"

	IndexAllHomeworks = "homework_index"
	IndexHasImages    = "HasImageIndex"
	IndexHasVideos    = "HasVideosIndex"
	IndexHasUrls      = "HasUrlsIndex"
	IndexPerson       = "person_index"
	IndexGroup        = "group_index"
	IndexSchool       = "school_index"
)

// mongo 相关
const (
	ID         = "_id"
	Email      = "email"
	Username   = "username"
	CreateTime = "create_time"
)

// 角色
const (
	RoleAdmin         = "Admin"
	RoleEditor        = "Editor"
	RoleUser          = "User"
	RoleStudentPublic = "StudentPublic"
)

// 默认值
const (
	DefaultListLimit = 100
	PresignExpireSec = 900
	VerifyCodeTTL    = 300
)

// AllowedSchools 允许创建作业的机构列表
var AllowedSchools = []string{
	"The Y Panania OSHC",
	"Eastwood Before & After School Care Centre Inc",
	"Randwick Out of School Hours Care (Randwick OOSH)",
	"Crown Street Out of School Hours Care (OSHC)",
	"The Y Oakhill Drive OSHC",
	"Max Hacker Tech Club",
}
