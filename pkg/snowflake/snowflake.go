package snowflake

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	var err error
	node, err = snowflake.NewNode(nodeID())
	if err != nil {
		panic(err)
	}
}

// nodeID 多实例部署时通过 SNOWFLAKE_NODE 区分，默认 1
func nodeID() int64 {
	if v := os.Getenv("SNOWFLAKE_NODE"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id
		}
	}
	return 1
}

// GenID 生成递增的行 ID，同一毫秒内也保持有序
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
