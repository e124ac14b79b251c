package homework

import (
	"context"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/consts"
	"homework-show/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// DynamoMapper 作业记录的DynamoDB映射。
// 写入一律整条Put，last-write-wins，不做乐观并发控制
type DynamoMapper struct {
	svc   *dynamodb.DynamoDB
	table string
}

func NewDynamoMapper(cfg *config.Config) *DynamoMapper {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
	}))
	log.Info("NewHomeworkDynamoMapper table: %s", cfg.AWS.DynamoTable)
	return &DynamoMapper{
		svc:   dynamodb.New(sess),
		table: cfg.AWS.DynamoTable,
	}
}

func (m *DynamoMapper) Put(ctx context.Context, h *Homework) error {
	item, err := dynamodbattribute.MarshalMap(h)
	if err != nil {
		return err
	}
	_, err = m.svc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(m.table),
		Item:      item,
	})
	return err
}

func (m *DynamoMapper) FindOne(ctx context.Context, id string) (*Homework, error) {
	out, err := m.svc.QueryWithContext(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(m.table),
		KeyConditionExpression: aws.String("PK = :p and begins_with(SK, :s)"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":p": {S: aws.String(consts.HomeworkKeyPrefix + id)},
			":s": {S: aws.String(consts.MetaKeyPrefix)},
		},
		Limit: aws.Int64(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, consts.ErrNotFound
	}
	var h Homework
	if err := dynamodbattribute.UnmarshalMap(out.Items[0], &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListAll 按创建时间倒序列出全部作业
func (m *DynamoMapper) ListAll(ctx context.Context, limit int64) ([]*Homework, error) {
	return m.queryIndex(ctx, consts.IndexAllHomeworks, "entityType = :v",
		consts.EntityHomework, limit)
}

func (m *DynamoMapper) ListWithImages(ctx context.Context, limit int64) ([]*Homework, error) {
	return m.queryIndex(ctx, consts.IndexHasImages, "has_images = :v", "1", limit)
}

func (m *DynamoMapper) ListWithVideos(ctx context.Context, limit int64) ([]*Homework, error) {
	return m.queryIndex(ctx, consts.IndexHasVideos, "has_videos = :v", "1", limit)
}

func (m *DynamoMapper) ListWithUrls(ctx context.Context, limit int64) ([]*Homework, error) {
	return m.queryIndex(ctx, consts.IndexHasUrls, "has_urls = :v", "1", limit)
}

func (m *DynamoMapper) ListByPerson(ctx context.Context, person string, limit int64) ([]*Homework, error) {
	return m.queryIndex(ctx, consts.IndexPerson, "person_name = :v", person, limit)
}

func (m *DynamoMapper) ListByGroup(ctx context.Context, group string, limit int64) ([]*Homework, error) {
	return m.queryIndex(ctx, consts.IndexGroup, "group_name = :v", group, limit)
}

func (m *DynamoMapper) ListBySchool(ctx context.Context, school string, limit int64) ([]*Homework, error) {
	return m.queryIndex(ctx, consts.IndexSchool, "school_id = :v", school, limit)
}

func (m *DynamoMapper) queryIndex(ctx context.Context, index, keyCond, value string, limit int64) ([]*Homework, error) {
	if limit <= 0 {
		limit = consts.DefaultListLimit
	}
	out, err := m.svc.QueryWithContext(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(m.table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":v": {S: aws.String(value)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int64(limit),
	})
	if err != nil {
		return nil, err
	}
	homeworks := make([]*Homework, 0, len(out.Items))
	if err := dynamodbattribute.UnmarshalListOfMaps(out.Items, &homeworks); err != nil {
		return nil, err
	}
	return homeworks, nil
}

func (m *DynamoMapper) Delete(ctx context.Context, h *Homework) error {
	_, err := m.svc.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(m.table),
		Key: map[string]*dynamodb.AttributeValue{
			consts.AttrPK: {S: aws.String(consts.HomeworkKeyPrefix + h.ID)},
			consts.AttrSK: {S: aws.String(consts.MetaKeyPrefix + h.CreatedAt)},
		},
	})
	return err
}
