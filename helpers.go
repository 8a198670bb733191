package statusreset

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ToPtr returns a pointer to the given value.
func ToPtr[T any](v T) *T {
	return &v
}

// KeyOf extracts the primary key of an item. It returns a key map holding
// only the key attribute, the printable key value, and false if the item
// has no such attribute.
func KeyOf(item Item, keyAttribute string) (Item, string, bool) {
	av, ok := item[keyAttribute]
	if !ok || av == nil {
		return nil, "", false
	}
	return Item{keyAttribute: av}, FormatAttributeValue(av), true
}

// FormatAttributeValue renders a scalar attribute value for logs and errors.
// Sets, lists and maps are not valid key types and render as their Go value.
func FormatAttributeValue(av types.AttributeValue) string {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberB:
		return base64.StdEncoding.EncodeToString(tv.Value)
	case *types.AttributeValueMemberBOOL:
		return strconv.FormatBool(tv.Value)
	case *types.AttributeValueMemberNULL:
		return ""
	default:
		return fmt.Sprintf("%v", av)
	}
}
