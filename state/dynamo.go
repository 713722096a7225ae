package state

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/modeviz/model"
)

const defaultItemKey = "state#current"

type DynamoConfig struct {
	Endpoint string
	Region   string
	Table    string
	// Key is the PK of the state item; several bridges sharing a table can
	// use different keys.
	Key string
}

// DynamoStore keeps the state in one DynamoDB item so several bridge
// processes can share it.
type DynamoStore struct {
	client        dynamodbiface.DynamoDBAPI
	table         string
	key           string
	DefaultOctave int
	Now           func() time.Time
}

type stateItem struct {
	PK        string `dynamodbav:"PK"`
	RootNote  string `dynamodbav:"RootNote"`
	Mode      string `dynamodbav:"Mode"`
	UpdatedAt string `dynamodbav:"UpdatedAt,omitempty"`
}

func NewDynamoStore(cfg DynamoConfig, defaultOctave int) (*DynamoStore, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewDynamoStoreWithClient(dynamodb.New(sess), cfg.Table, cfg.Key, defaultOctave), nil
}

func NewDynamoStoreWithClient(client dynamodbiface.DynamoDBAPI, table string, key string, defaultOctave int) *DynamoStore {
	if key == "" {
		key = defaultItemKey
	}
	return &DynamoStore{
		client:        client,
		table:         table,
		key:           key,
		DefaultOctave: defaultOctave,
		Now:           time.Now,
	}
}

func (d *DynamoStore) Load(ctx context.Context) (model.State, error) {
	def := Default(d.DefaultOctave, d.Now())
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(d.key)},
		},
	})
	if err != nil {
		return def, fmt.Errorf("error from DynamoDB: %w", err)
	}
	if len(out.Item) == 0 {
		return def, nil
	}

	var item stateItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return def, nil
	}
	res, _ := Merge(model.State{RootNote: item.RootNote, Mode: item.Mode, UpdatedAt: item.UpdatedAt}, def)
	return res, nil
}

func (d *DynamoStore) Save(ctx context.Context, s model.State) error {
	av, err := dynamodbattribute.MarshalMap(stateItem{
		PK:        d.key,
		RootNote:  s.RootNote,
		Mode:      s.Mode,
		UpdatedAt: s.UpdatedAt,
	})
	if err != nil {
		return err
	}
	_, err = d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB: %w", err)
	}
	return nil
}
