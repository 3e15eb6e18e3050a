package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// SubmissionComments realizes the comment forest of a post. "More"
// placeholders are replaced in tree order with the comments they stand for,
// at most expandLimit times; nil expands until none are left. Placeholders
// that were not expanded stay in the forest.
func (c *Client) SubmissionComments(ctx context.Context, id string, expandLimit *int) ([]*CommentNode, error) {
	post, forest, err := c.submissionPage(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if err := c.replaceMore(ctx, post.ID, &forest, expandLimit); err != nil {
		return nil, err
	}
	return forest, nil
}

// pendingMore is a placeholder together with the slice that holds it.
type pendingMore struct {
	node  *CommentNode
	owner *[]*CommentNode
}

func (c *Client) replaceMore(ctx context.Context, postID string, forest *[]*CommentNode, expandLimit *int) error {
	queue := gatherMore(forest, nil)
	seen := make(map[string]bool)
	expanded := 0

	for len(queue) > 0 {
		if expandLimit != nil && expanded >= *expandLimit {
			break
		}

		item := queue[0]
		queue = queue[1:]

		key := moreKey(item.node.More)
		if seen[key] {
			continue
		}
		seen[key] = true

		replacement, err := c.expandMore(ctx, postID, item.node.More)
		if err != nil {
			return err
		}
		expanded++

		splice(item.owner, item.node, replacement)

		for _, node := range replacement {
			if node.More != nil {
				queue = append(queue, pendingMore{node: node, owner: item.owner})
			} else if node.Comment != nil {
				queue = gatherMore(&node.Comment.Replies, queue)
			}
		}
	}

	return nil
}

// gatherMore collects placeholders in depth-first order.
func gatherMore(owner *[]*CommentNode, queue []pendingMore) []pendingMore {
	for _, node := range *owner {
		switch {
		case node.More != nil:
			queue = append(queue, pendingMore{node: node, owner: owner})
		case node.Comment != nil:
			queue = gatherMore(&node.Comment.Replies, queue)
		}
	}
	return queue
}

func moreKey(more *MoreComments) string {
	return more.ParentID + "|" + more.ID + "|" + strings.Join(more.Children, ",")
}

// splice replaces target inside *owner with replacement, keeping order.
func splice(owner *[]*CommentNode, target *CommentNode, replacement []*CommentNode) {
	nodes := *owner
	for i, node := range nodes {
		if node != target {
			continue
		}
		out := make([]*CommentNode, 0, len(nodes)-1+len(replacement))
		out = append(out, nodes[:i]...)
		out = append(out, replacement...)
		out = append(out, nodes[i+1:]...)
		*owner = out
		return
	}
}

// expandMore loads the comments a placeholder stands for.
func (c *Client) expandMore(ctx context.Context, postID string, more *MoreComments) ([]*CommentNode, error) {
	if more.IsContinueThread() {
		return c.continueThread(ctx, postID, more.ParentID)
	}

	var things []*Thing
	for start := 0; start < len(more.Children); start += maxPageSize {
		end := min(start+maxPageSize, len(more.Children))

		params := url.Values{
			"api_type": {"json"},
			"link_id":  {Fullname(KindLink, postID)},
			"children": {strings.Join(more.Children[start:end], ",")},
			"sort":     {"confidence"},
		}

		var resp jsonResponse
		if err := c.get(ctx, "/api/morechildren", params, &resp); err != nil {
			return nil, err
		}
		if err := jsonErrors(resp.JSON.Errors); err != nil {
			return nil, err
		}

		var data struct {
			Things []*Thing `json:"things"`
		}
		if len(resp.JSON.Data) > 0 {
			if err := json.Unmarshal(resp.JSON.Data, &data); err != nil {
				return nil, fmt.Errorf("failed to decode morechildren response: %w", err)
			}
		}
		things = append(things, data.Things...)
	}

	return assembleChildren(more.ParentID, things)
}

// assembleChildren rebuilds a subtree from the flat, depth-first list that
// morechildren returns. Nodes whose parent is not part of the list are
// placed at the placeholder's level.
func assembleChildren(parentID string, things []*Thing) ([]*CommentNode, error) {
	top := make([]*CommentNode, 0, len(things))
	byName := make(map[string]*Comment)

	for _, thing := range things {
		node, err := parseNode(thing)
		if err != nil {
			return nil, err
		}

		var nodeParent string
		if node.Comment != nil {
			nodeParent = node.Comment.ParentID
		} else {
			nodeParent = node.More.ParentID
		}

		if parent, ok := byName[nodeParent]; ok && nodeParent != parentID {
			parent.Replies = append(parent.Replies, node)
		} else {
			top = append(top, node)
		}

		if node.Comment != nil {
			byName[node.Comment.Name] = node.Comment
		}
	}

	return top, nil
}

// continueThread follows a "continue this thread" link by loading the parent
// comment's own page and returning its replies.
func (c *Client) continueThread(ctx context.Context, postID, parentFullname string) ([]*CommentNode, error) {
	commentID := strings.TrimPrefix(parentFullname, KindComment+"_")
	_, forest, err := c.submissionPage(ctx, postID, url.Values{"comment": {commentID}})
	if err != nil {
		return nil, err
	}

	if parent := findComment(forest, parentFullname); parent != nil {
		return parent.Replies, nil
	}
	return []*CommentNode{}, nil
}

func findComment(forest []*CommentNode, fullname string) *Comment {
	for _, node := range forest {
		if node.Comment == nil {
			continue
		}
		if node.Comment.Name == fullname {
			return node.Comment
		}
		if found := findComment(node.Comment.Replies, fullname); found != nil {
			return found
		}
	}
	return nil
}
