// Package model defines the Secret Manager v1 resource records.
//
// # Resources
//
//   - Secret: a logical secret and its replication, rotation and expiration policy
//   - SecretVersion: one immutable payload revision of a Secret
//   - SecretPayload: the secret bytes and their optional CRC32C checksum
//
// # Requests and Responses
//
// Every REST method has a request record (ListSecretsRequest, CreateSecretRequest,
// ...) and, where the method returns more than a resource, a response record.
//
// # Wire Format
//
// Records implement wire.Message and json.Marshaler/json.Unmarshaler, so any JSON
// engine produces the service's wire contract:
//
//	secret := &model.Secret{
//	    Replication: &model.Replication{Replication: &model.AutomaticReplication{}},
//	    Expiration:  model.TTL(wkt.NewDuration(24 * time.Hour)),
//	}
//	b, err := json.Marshal(secret)
//
// Union fields (Secret.Expiration, Replication.Replication and
// ReplicationStatus.ReplicationStatus) are interface values holding exactly one
// alternative. They are written without a tag and resolved by shape on decode.
package model
