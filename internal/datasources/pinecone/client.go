package pinecone

import (
	"context"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.EmbeddingRepository = (*Client)(nil)

// Client stores dream embeddings in a Pinecone index, one namespace per
// owner. Vector IDs are dream IDs.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) FetchDreamEmbeddings(
	ctx context.Context,
	ownerID string,
	dreamIDs []string,
) (map[string][]float32, error) {
	result := make(map[string][]float32, len(dreamIDs))
	if len(dreamIDs) == 0 {
		return result, nil
	}

	idxConn, err := c.connect(ownerID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	// Pinecone caps fetches at 1000 IDs per request.
	for start := 0; start < len(dreamIDs); start += fetchBatchSize {
		batch := dreamIDs[start:min(start+fetchBatchSize, len(dreamIDs))]
		resp, err := idxConn.FetchVectors(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("fetching vectors for owner [%s]: %w", ownerID, err)
		}
		for id, vector := range resp.Vectors {
			if vector == nil || len(vector.Values) == 0 {
				continue
			}
			result[id] = vector.Values
		}
	}

	return result, nil
}

const fetchBatchSize = 1000

func (c *Client) SetDreamEmbedding(
	ctx context.Context,
	ownerID string,
	dreamID string,
	embedding []float32,
) error {
	idxConn, err := c.connect(ownerID)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	metadata, err := structpb.NewStruct(map[string]any{
		"owner_id": ownerID,
	})
	if err != nil {
		return fmt.Errorf("creating vector metadata: %w", err)
	}

	if _, err := idxConn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       dreamID,
		Values:   embedding,
		Metadata: metadata,
	}}); err != nil {
		return fmt.Errorf("upserting vector for dream [%s]: %w", dreamID, err)
	}
	return nil
}

func (c *Client) DeleteDreamEmbedding(ctx context.Context, ownerID, dreamID string) error {
	idxConn, err := c.connect(ownerID)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	if err := idxConn.DeleteVectorsById(ctx, []string{dreamID}); err != nil {
		return fmt.Errorf("deleting vector for dream [%s]: %w", dreamID, err)
	}
	return nil
}

func (c *Client) connect(ownerID string) (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: namespaceForOwner(ownerID),
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func namespaceForOwner(ownerID string) string {
	return "owner-" + ownerID
}
